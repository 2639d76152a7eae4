package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/analyses"
	"resume-analyzer/internal/auth"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/llm/gemini"
	"resume-analyzer/internal/llm/openai"
	"resume-analyzer/internal/resumes"
	sharedauth "resume-analyzer/internal/shared/auth"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/server"
	"resume-analyzer/internal/shared/storage/db"
	"resume-analyzer/internal/users"
)

// App holds shared dependencies built from configuration.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	UsersRepo    users.Repo
	ResumesRepo  resumes.Repo
	AnalysesRepo analyses.Repo

	UsersService    *users.Service
	ResumesService  *resumes.Service
	AnalysesService *analyses.Service
	AuthService     *auth.Service

	UsersHandler    *users.Handler
	ResumesHandler  *resumes.Handler
	AnalysesHandler *analyses.Handler
	AuthHandler     *auth.Handler
	GoogleAuth      *auth.GoogleService
}

// Build prepares all dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Issuer:          app.AuthService.Issuer,
		AuthHandler:     app.AuthHandler,
		GoogleAuth:      app.GoogleAuth,
		UsersHandler:    app.UsersHandler,
		ResumesHandler:  app.ResumesHandler,
		AnalysesHandler: app.AnalysesHandler,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var userRepo users.Repo
	var resumeRepo resumes.Repo
	var analysisRepo analyses.Repo

	var memResumes *resumes.MemoryRepo
	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		analysisRepo = &analyses.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		memResumes = resumes.NewMemoryRepo()
		resumeRepo = memResumes
		analysisRepo = analyses.NewMemoryRepo()
	}

	llmClient, err := buildLLM(app.Config)
	if err != nil {
		return err
	}

	resumeSvc := resumes.NewService(resumeRepo)
	resumeSvc.LLM = llmClient
	resumeSvc.ContentCheck = app.Config.ContentCheck

	analysisSvc := analyses.NewService(analysisRepo, resumeSvc, llmClient)
	analysisSvc.ContentCheck = app.Config.ContentCheck

	// Without a database there are no FK cascades, so deletion chains are
	// wired explicitly: user -> resumes -> analyses.
	if memResumes != nil {
		memResumes.SetDeleteHook(func(resumeID string) {
			if err := analysisRepo.DeleteByResume(context.Background(), resumeID); err != nil {
				log.Printf("bootstrap: cascade analyses for resume %s: %v", resumeID, err)
			}
		})
	}

	userSvc := users.NewService(userRepo)
	userSvc.Resumes = resumeSvc

	issuer, err := sharedauth.NewTokenIssuer(app.Config.JWTSecret, app.Config.JWTTTL)
	if err != nil {
		return err
	}
	authSvc := auth.NewService(userSvc, issuer)

	app.UsersRepo = userRepo
	app.ResumesRepo = resumeRepo
	app.AnalysesRepo = analysisRepo
	app.UsersService = userSvc
	app.ResumesService = resumeSvc
	app.AnalysesService = analysisSvc
	app.AuthService = authSvc
	app.UsersHandler = users.NewHandler(userSvc)
	app.ResumesHandler = resumes.NewHandler(resumeSvc, app.Config.MaxUploadBytes)
	app.AnalysesHandler = analyses.NewHandler(analysisSvc)
	app.AuthHandler = auth.NewHandler(authSvc)
	app.GoogleAuth = auth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
		authSvc,
	)
	return nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); apiKey != "" {
			return gemini.NewClient(context.Background(), apiKey, cfg.LLMModel)
		}
	case "openai":
		if apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); apiKey != "" {
			return openai.NewClient(apiKey, cfg.LLMModel)
		}
	}
	log.Printf("bootstrap: no %s API key configured; using placeholder llm client", cfg.LLMProvider)
	return llm.PlaceholderClient{}, nil
}
