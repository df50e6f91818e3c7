package router

import (
	"github.com/oksasatya/dailyhub/internal/application"
	"github.com/oksasatya/dailyhub/internal/container"
	pginfra "github.com/oksasatya/dailyhub/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/dailyhub/internal/interface/http"
	"github.com/oksasatya/dailyhub/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(repo, container.GetJWT(), container.GetRedis(), container.GetLogger())
	h := handlers.NewAuthHandler(svc, container.GetJWT(), container.GetLogger(),
		container.GetConfig().CookieDomain, container.GetConfig().CookieSecure)
	return modules.NewAuthModule(h, container.GetJWT())
}

func buildTasksModule() *modules.TasksModule {
	repo := pginfra.NewTaskRepository(container.GetPGPool())
	svc := application.NewTaskService(repo, container.GetLogger())
	return modules.NewTasksModule(handlers.NewTaskHandler(svc, container.GetLogger()))
}

func buildNotesModule() *modules.NotesModule {
	repo := pginfra.NewNoteRepository(container.GetPGPool())
	svc := application.NewNoteService(repo, container.GetLogger())
	return modules.NewNotesModule(handlers.NewNoteHandler(svc, container.GetLogger()), container.GetJWT())
}

func buildBookshelfModule() *modules.BookshelfModule {
	svc := application.NewBookshelfService(
		pginfra.NewCategoryRepository(container.GetPGPool()),
		pginfra.NewBookRepository(container.GetPGPool()),
		container.GetLogger(),
	)
	return modules.NewBookshelfModule(handlers.NewBookshelfHandler(svc, container.GetLogger()))
}

func buildWeatherModule() *modules.WeatherModule {
	svc := application.NewWeatherService(
		container.GetOpenWeather(),
		pginfra.NewSearchHistoryRepository(container.GetPGPool()),
		container.GetRedis(),
		container.GetConfig().WeatherCacheTTL,
		container.GetLogger(),
	)
	return modules.NewWeatherModule(handlers.NewWeatherHandler(svc, container.GetLogger()))
}

func buildBlogModule() *modules.BlogModule {
	svc := application.NewBlogService(
		pginfra.NewPostRepository(container.GetPGPool()),
		pginfra.NewCommentRepository(container.GetPGPool()),
		container.GetES(),
		container.GetConfig().ESPostsIndex,
		container.GetLogger(),
	)
	return modules.NewBlogModule(handlers.NewBlogHandler(svc, container.GetLogger()), container.GetJWT())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildTasksModule())
	r.Add(buildAuthModule())
	r.Add(buildNotesModule())
	r.Add(buildBookshelfModule())
	r.Add(buildWeatherModule())
	r.Add(buildBlogModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
