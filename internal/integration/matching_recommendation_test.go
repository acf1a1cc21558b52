package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"hackmate/internal/config"
	"hackmate/internal/database"
	"hackmate/internal/database/migration"
	dbpostgres "hackmate/internal/database/postgres"
	"hackmate/internal/delivery/http/handler"
	"hackmate/internal/delivery/http/middleware"
	"hackmate/internal/delivery/http/routes"
	v1 "hackmate/internal/delivery/http/routes/v1"
	"hackmate/internal/domain/hackathon"
	"hackmate/internal/domain/matching"
	"hackmate/internal/domain/team"
	"hackmate/internal/domain/user"
	"hackmate/internal/pkg/jwt"
	"hackmate/internal/repository"
	"hackmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type matchResultItem struct {
	OverallScore   float64  `json:"overall_score"`
	Confidence     float64  `json:"confidence"`
	MatchingSkills []string `json:"matching_skills"`
	Explanation    string   `json:"explanation"`
}

type teamRecommendationItem struct {
	Team struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		MemberCount int       `json:"member_count"`
		MaxMembers  int       `json:"max_members"`
	} `json:"team"`
	Result matchResultItem `json:"result"`
}

func TestIntegration_Login_Matching_TeamRecommendations(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	seed := seedDummyData(t, ctx, db)
	defer cleanupSeed(t, ctx, db, seed)

	app := newTestFiberApp(t, seed.cfg, db)

	tok := loginAndGetJWT(t, app, seed.searcherEmail)
	if tok == "" {
		t.Fatalf("login: empty access_token")
	}

	matchUC := usecase.NewMatchUsecase(
		repository.NewPostgresProfileRepository(db),
		repository.NewPostgresTeamRepository(db),
		repository.NewPostgresPreferenceRepository(db),
		repository.NewPostgresMatchHistoryRepository(db),
		nil,
	)

	res, err := matchUC.ScoreMatch(ctx, seed.searcherID, seed.teamGoodID)
	if err != nil {
		t.Fatalf("score match error: %v", err)
	}
	if res.OverallScore < 0 || res.OverallScore > 1 {
		t.Fatalf("score match: expected overall in [0,1], got %v", res.OverallScore)
	}
	if res.Confidence < res.OverallScore {
		t.Fatalf("score match: expected confidence >= overall, got conf=%v overall=%v", res.Confidence, res.OverallScore)
	}
	if !containsSkill(res.MatchingSkills, "go") {
		t.Fatalf("score match: expected matching_skills to contain go, got %v", res.MatchingSkills)
	}
	if res.Explanation == "" {
		t.Fatalf("score match: expected non-empty explanation")
	}

	recs := callTeamRecommendations(t, app, tok, seed.hackathonID)
	if len(recs) != 2 {
		t.Fatalf("recommendations: expected 2 teams, got %d", len(recs))
	}

	assertNoDuplicateTeams(t, recs)
	assertSortedByScoreDesc(t, recs)

	if recs[0].Team.ID != seed.teamGoodID {
		t.Fatalf("recommendations: expected skill-aligned team first, got %s", recs[0].Team.Name)
	}
	if recs[0].Result.OverallScore <= recs[1].Result.OverallScore {
		t.Fatalf("recommendations: expected strict ordering, got %v then %v",
			recs[0].Result.OverallScore, recs[1].Result.OverallScore)
	}
	if !containsSkill(recs[0].Result.MatchingSkills, "go") {
		t.Fatalf("recommendations: expected top team matching_skills to contain go, got %v", recs[0].Result.MatchingSkills)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("HACKMATE_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("HACKMATE_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("HACKMATE_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	usr := stringsOrDefault(os.Getenv("HACKMATE_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("HACKMATE_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("HACKMATE_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || usr == "" {
		t.Skip("missing test DB env vars: set HACKMATE_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	dbcfg := config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     usr,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}

	db, err := dbpostgres.Connect(ctx, dbcfg)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	migDir := resolveMigrationsDir(t)
	r := migration.Runner{Dir: migDir}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	// this file: internal/integration/matching_recommendation_test.go
	// repo root: ../../
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(root, "migrations")

	if st, err := os.Stat(migDir); err != nil || !st.IsDir() {
		t.Fatalf("resolve migrations dir: not found or not a dir: %s", migDir)
	}
	files, _ := filepath.Glob(filepath.Join(migDir, "V*__*.sql"))
	if len(files) == 0 {
		t.Fatalf("resolve migrations dir: no migration files found in %s", migDir)
	}

	return migDir
}

type seededIDs struct {
	cfg config.Config

	searcherID    uuid.UUID
	searcherEmail string
	leaderGoodID  uuid.UUID
	leaderOffID   uuid.UUID
	hackathonID   uuid.UUID
	teamGoodID    uuid.UUID
	teamOffID     uuid.UUID
}

const testPassword = "integration-password"

func seedDummyData(t *testing.T, ctx context.Context, db database.DB) seededIDs {
	t.Helper()

	run := uuid.New().String()[:8]

	out := seededIDs{
		cfg: config.Config{
			App: config.AppConfig{AppName: "Hackmate", Environment: "test", HTTPPort: "0"},
			JWT: config.JWTConfig{
				AccessSecret:     stringsOrDefault(os.Getenv("HACKMATE_TEST_JWT_ACCESS_SECRET"), "test-access-secret"),
				RefreshSecret:    stringsOrDefault(os.Getenv("HACKMATE_TEST_JWT_REFRESH_SECRET"), "test-refresh-secret"),
				AccessExpiresIn:  15 * time.Minute,
				RefreshExpiresIn: 24 * time.Hour,
			},
		},
		searcherEmail: "it-searcher-" + run + "@example.com",
	}

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	teams := repository.NewPostgresTeamRepository(db)
	prefs := repository.NewPostgresPreferenceRepository(db)
	hacks := repository.NewPostgresHackathonRepository(db)

	out.searcherID = seedUser(t, ctx, users, out.searcherEmail, "IT Searcher")
	out.leaderGoodID = seedUser(t, ctx, users, "it-leader-good-"+run+"@example.com", "IT Leader Good")
	out.leaderOffID = seedUser(t, ctx, users, "it-leader-off-"+run+"@example.com", "IT Leader Off")

	seedProfile(t, ctx, profiles, out.searcherID, []string{"go", "postgres", "docker"}, "intermediate", "UTC+2")
	seedProfile(t, ctx, profiles, out.leaderGoodID, []string{"react", "design"}, "advanced", "UTC+2")
	seedProfile(t, ctx, profiles, out.leaderOffID, []string{"rust"}, "expert", "UTC-8")

	out.hackathonID = uuid.New()
	if err := hacks.UpsertImported(ctx, hackathon.Hackathon{
		ID:         out.hackathonID,
		Name:       "Integration Hack " + run,
		Slug:       "integration-hack-" + run,
		StartsAt:   time.Now().UTC().Add(24 * time.Hour),
		EndsAt:     time.Now().UTC().Add(72 * time.Hour),
		ExternalID: "it-" + run,
	}); err != nil {
		t.Fatalf("seed hackathon: %v", err)
	}

	for _, id := range []uuid.UUID{out.searcherID, out.leaderGoodID, out.leaderOffID} {
		if err := hacks.RegisterParticipant(ctx, out.hackathonID, id); err != nil {
			t.Fatalf("register participant: %v", err)
		}
	}

	out.teamGoodID = seedTeam(t, ctx, teams, out.hackathonID, out.leaderGoodID, "Backend Builders "+run)
	out.teamOffID = seedTeam(t, ctx, teams, out.hackathonID, out.leaderOffID, "Systems Crew "+run)

	goodPrefs := matching.DefaultPreferences()
	goodPrefs.RequiredSkills = []string{"go", "postgres"}
	goodPrefs.PreferredSkills = []string{"docker"}
	goodPrefs.PreferredTimezones = []string{"UTC+2"}
	if err := prefs.UpsertTeamPreferences(ctx, out.teamGoodID, goodPrefs); err != nil {
		t.Fatalf("seed team prefs: %v", err)
	}

	offPrefs := matching.DefaultPreferences()
	offPrefs.RequiredSkills = []string{"rust", "embedded"}
	offPrefs.MinExperience = matching.LevelExpert
	offPrefs.PreferredTimezones = []string{"UTC-8"}
	if err := prefs.UpsertTeamPreferences(ctx, out.teamOffID, offPrefs); err != nil {
		t.Fatalf("seed team prefs: %v", err)
	}

	return out
}

func seedUser(t *testing.T, ctx context.Context, users *repository.PostgresUserRepository, email, name string) uuid.UUID {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := user.User{ID: uuid.New(), Email: email, DisplayName: name, PasswordHash: string(hash)}
	if err := users.CreateUser(ctx, u); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u.ID
}

func seedProfile(t *testing.T, ctx context.Context, profiles *repository.PostgresProfileRepository, userID uuid.UUID, skills []string, level, tz string) {
	t.Helper()

	start, end := "09:00", "18:00"
	if err := profiles.UpdateProfile(ctx, user.Profile{
		UserID:          userID,
		ExperienceLevel: level,
		Timezone:        tz,
		WorkStart:       &start,
		WorkEnd:         &end,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if err := profiles.ReplaceSkills(ctx, userID, skills); err != nil {
		t.Fatalf("seed skills: %v", err)
	}
}

func seedTeam(t *testing.T, ctx context.Context, teams *repository.PostgresTeamRepository, hackathonID, leaderID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	tm := team.Team{
		ID:          uuid.New(),
		HackathonID: hackathonID,
		Name:        name,
		LeaderID:    leaderID,
		MaxMembers:  4,
		Recruiting:  true,
	}
	if err := teams.CreateTeam(ctx, tm); err != nil {
		t.Fatalf("seed team %s: %v", name, err)
	}
	return tm.ID
}

func cleanupSeed(t *testing.T, ctx context.Context, db database.DB, seed seededIDs) {
	t.Helper()

	_, _ = db.Exec(ctx, `DELETE FROM team_matches WHERE hackathon_id = $1`, seed.hackathonID)
	_, _ = db.Exec(ctx, `DELETE FROM team_matches WHERE team_id = $1 OR team_id = $2`, seed.teamGoodID, seed.teamOffID)
	_, _ = db.Exec(ctx, `DELETE FROM team_preferences WHERE team_id = $1 OR team_id = $2`, seed.teamGoodID, seed.teamOffID)
	_, _ = db.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 OR team_id = $2`, seed.teamGoodID, seed.teamOffID)
	_, _ = db.Exec(ctx, `DELETE FROM teams WHERE id = $1 OR id = $2`, seed.teamGoodID, seed.teamOffID)
	_, _ = db.Exec(ctx, `DELETE FROM hackathon_participants WHERE hackathon_id = $1`, seed.hackathonID)
	_, _ = db.Exec(ctx, `DELETE FROM hackathons WHERE id = $1`, seed.hackathonID)
	for _, id := range []uuid.UUID{seed.searcherID, seed.leaderGoodID, seed.leaderOffID} {
		_, _ = db.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, id)
		_, _ = db.Exec(ctx, `DELETE FROM user_preferences WHERE user_id = $1`, id)
		_, _ = db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	}
}

type nopCache struct{}

func (nopCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (nopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (nopCache) Delete(context.Context, string) error { return nil }

type nopNotifier struct{}

func (nopNotifier) NotifyMatchesUpdated(uuid.UUID) {}

func newTestFiberApp(t *testing.T, cfg config.Config, db database.DB) *fiber.App {
	t.Helper()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	teams := repository.NewPostgresTeamRepository(db)
	prefs := repository.NewPostgresPreferenceRepository(db)
	hacks := repository.NewPostgresHackathonRepository(db)
	history := repository.NewPostgresMatchHistoryRepository(db)

	jwtSvc := jwt.NewHMACService(cfg.JWT)

	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profiles)
	teamUC := usecase.NewTeamUsecase(teams, prefs, hacks, nopNotifier{})
	hackUC := usecase.NewHackathonUsecase(hacks)
	matchUC := usecase.NewMatchUsecase(profiles, teams, prefs, history, logger)
	recUC := usecase.NewRecommendationUsecase(profiles, teams, prefs, hacks, nopCache{}, logger)

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.NewRegistry(
		handler.NewHealthHandler(db),
		middleware.NewAuthMiddleware(jwtSvc),
		v1.Handlers{
			Auth:           handler.NewAuthHandler(authUC),
			Profile:        handler.NewProfileHandler(profileUC),
			Team:           handler.NewTeamHandler(teamUC),
			Hackathon:      handler.NewHackathonHandler(hackUC),
			Match:          handler.NewMatchHandler(matchUC),
			Recommendation: handler.NewRecommendationHandler(recUC, teamUC),
		},
	).Register(app)

	return app
}

func loginAndGetJWT(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	b, _ := json.Marshal(map[string]string{"email": email, "password": testPassword})

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("login decode error: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("login: expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(sr.Data, &m); err != nil {
		t.Fatalf("login: data unmarshal error: %v", err)
	}
	var token string
	if raw, ok := m["access_token"]; ok {
		_ = json.Unmarshal(raw, &token)
	}
	if token == "" {
		t.Fatalf("login: missing access_token")
	}
	return token
}

func callTeamRecommendations(t *testing.T, app *fiber.App, token string, hackathonID uuid.UUID) []teamRecommendationItem {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/v1/hackathons/"+hackathonID.String()+"/recommendations/teams?limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("recommendations request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("recommendations decode error: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("recommendations: expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var items []teamRecommendationItem
	if err := json.Unmarshal(sr.Data, &items); err != nil {
		t.Fatalf("recommendations: data unmarshal error: %v", err)
	}
	return items
}

func assertSortedByScoreDesc(t *testing.T, items []teamRecommendationItem) {
	t.Helper()

	for i := 1; i < len(items); i++ {
		if items[i].Result.OverallScore > items[i-1].Result.OverallScore {
			t.Fatalf("recommendations: expected overall_score descending at idx=%d: prev=%v cur=%v",
				i, items[i-1].Result.OverallScore, items[i].Result.OverallScore)
		}
	}
}

func assertNoDuplicateTeams(t *testing.T, items []teamRecommendationItem) {
	t.Helper()

	seen := map[uuid.UUID]bool{}
	for _, it := range items {
		if seen[it.Team.ID] {
			t.Fatalf("recommendations: duplicate team %s", it.Team.ID)
		}
		seen[it.Team.ID] = true
	}
}

func containsSkill(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
