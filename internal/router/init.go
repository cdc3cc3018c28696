package router

import (
	"studentms/internal/application"
	"studentms/internal/container"
	pginfra "studentms/internal/infrastructure/postgres"
	handlers "studentms/internal/interface/http"
	"studentms/internal/router/modules"
)

// InitModules builds all feature modules from container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(container.GetPGPool())
	tasks := pginfra.NewTaskRepository(container.GetPGPool())

	authSvc := application.NewAuthService(users, container.GetJWT(), logger)

	adminSvc := application.NewAdminService(users, tasks, logger)
	adminSvc.Pub = container.GetRabbitPub()
	adminSvc.MailEnabled = cfg.MailSendEnabled
	adminSvc.ES = container.GetES()
	adminSvc.ESStudentIndex = cfg.ESStudentsIndex
	adminSvc.GCS = container.GetGCS()
	adminSvc.GCSBucket = cfg.GCSBucket

	studentSvc := application.NewStudentService(tasks, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger), users, container.GetJWT()))
	r.Add(modules.NewStudentModule(handlers.NewStudentHandler(studentSvc, logger), users, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
