package router

import (
	"time"

	"github.com/Fenn3kk/smpp-backend/internal/config"
	"github.com/Fenn3kk/smpp-backend/internal/handler"
	"github.com/Fenn3kk/smpp-backend/internal/middleware"
	"github.com/Fenn3kk/smpp-backend/internal/model"
	"github.com/Fenn3kk/smpp-backend/internal/repository"
	"github.com/Fenn3kk/smpp-backend/internal/service"
	"github.com/Fenn3kk/smpp-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, files storage.FileStorage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	propriedadeRepo := repository.NewPropriedadeRepository(db)
	ocorrenciaRepo := repository.NewOcorrenciaRepository(db)
	fotoRepo := repository.NewFotoRepository(db)
	cidadeRepo := repository.NewLookupRepository[model.Cidade](db)
	atividadeRepo := repository.NewLookupRepository[model.Atividade](db)
	vulnerabilidadeRepo := repository.NewLookupRepository[model.Vulnerabilidade](db)
	tipoOcorrenciaRepo := repository.NewLookupRepository[model.TipoOcorrencia](db)
	incidenteRepo := repository.NewLookupRepository[model.Incidente](db)

	// ── Services ─────────────────────────────────────────────────────────────
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpirationHours)
	authSvc := service.NewAuthService(usuarioRepo, tokens)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, tokens)
	propriedadeSvc := service.NewPropriedadeService(propriedadeRepo, ocorrenciaRepo, cidadeRepo, atividadeRepo, vulnerabilidadeRepo, files)
	ocorrenciaSvc := service.NewOcorrenciaService(ocorrenciaRepo, propriedadeRepo, tipoOcorrenciaRepo, incidenteRepo, files, cfg.PublicBaseURL)
	fotoSvc := service.NewFotoService(fotoRepo, ocorrenciaRepo, files, cfg.PublicBaseURL)

	cidadeSvc := service.NewLookupService(cidadeRepo, rdb, "lookup:cidades", "Cidade não encontrada", nil)
	atividadeSvc := service.NewLookupService(atividadeRepo, rdb, "lookup:atividades", "Atividade não encontrada", nil)
	vulnerabilidadeSvc := service.NewLookupService(vulnerabilidadeRepo, rdb, "lookup:vulnerabilidades", "Vulnerabilidade não encontrada", nil)
	tipoOcorrenciaSvc := service.NewLookupService(tipoOcorrenciaRepo, rdb, "lookup:tipo-ocorrencia", "Tipo de ocorrência não encontrado", nil)
	incidenteSvc := service.NewLookupService(incidenteRepo, rdb, "lookup:incidentes", "Incidente não encontrado",
		func(nome string) model.Incidente { return model.Incidente{Nome: nome} })

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	propriedadesH := handler.NewPropriedadesHandler(propriedadeSvc)
	ocorrenciasH := handler.NewOcorrenciasHandler(ocorrenciaSvc)
	fotosH := handler.NewFotosHandler(fotoSvc)
	uploadsH := handler.NewUploadsHandler(files)
	cidadesH := handler.NewLookupHandler[model.Cidade](cidadeSvc)
	atividadesH := handler.NewLookupHandler[model.Atividade](atividadeSvc)
	vulnerabilidadesH := handler.NewLookupHandler[model.Vulnerabilidade](vulnerabilidadeSvc)
	tiposOcorrenciaH := handler.NewLookupHandler[model.TipoOcorrencia](tipoOcorrenciaSvc)
	incidentesH := handler.NewLookupHandler[model.Incidente](incidenteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/uploads/:arquivo", uploadsH.Servir)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/cadastro", authH.Cadastro)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, usuarioRepo)
	api := r.Group("/", jwtMW)
	{
		usuarios := api.Group("/usuarios")
		{
			usuarios.GET("", middleware.RequireAdmin(), usuariosH.Listar)
			usuarios.POST("", middleware.RequireAdmin(), usuariosH.Criar)
			usuarios.GET("/:id", usuariosH.Buscar)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Excluir)
		}

		propriedades := api.Group("/propriedades")
		{
			propriedades.GET("", propriedadesH.Listar)
			propriedades.GET("/todas", propriedadesH.ListarTodas)
			propriedades.GET("/:id", propriedadesH.Buscar)
			propriedades.POST("", propriedadesH.Criar)
			propriedades.PUT("/:id", propriedadesH.Atualizar)
			propriedades.DELETE("/:id", propriedadesH.Excluir)
		}

		ocorrencias := api.Group("/ocorrencias")
		{
			ocorrencias.GET("/propriedade/:propriedadeId", ocorrenciasH.ListarPorPropriedade)
			ocorrencias.POST("", ocorrenciasH.Criar)
			ocorrencias.PUT("/:id", ocorrenciasH.Atualizar)
			ocorrencias.DELETE("/:id", ocorrenciasH.Excluir)
		}

		fotos := api.Group("/fotos")
		{
			fotos.GET("/ocorrencia/:ocorrenciaId", fotosH.ListarPorOcorrencia)
			fotos.DELETE("/:id", fotosH.Excluir)
		}

		// Lookup tables — read for any authenticated user
		api.GET("/cidades", cidadesH.Listar)
		api.GET("/cidades/:id", cidadesH.Buscar)
		api.GET("/atividades", atividadesH.Listar)
		api.GET("/atividades/:id", atividadesH.Buscar)
		api.GET("/vulnerabilidades", vulnerabilidadesH.Listar)
		api.GET("/vulnerabilidades/:id", vulnerabilidadesH.Buscar)
		api.GET("/tipo-ocorrencia", tiposOcorrenciaH.Listar)
		api.GET("/tipo-ocorrencia/:id", tiposOcorrenciaH.Buscar)
		api.GET("/incidentes", incidentesH.Listar)
		api.GET("/incidentes/:id", incidentesH.Buscar)

		// Incidentes are the one mutable lookup table
		api.POST("/incidentes", middleware.RequireAdmin(), incidentesH.Criar)
		api.DELETE("/incidentes/:id", middleware.RequireAdmin(), incidentesH.Excluir)
	}

	return r
}
