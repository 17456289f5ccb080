package routes

import (
	"crewcall/internal/delivery/http/handler"
	"crewcall/internal/delivery/http/middleware"
	"crewcall/internal/domain/user"
	"crewcall/internal/notify"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the constructed handlers into route registration. The app
// container builds them; this package only decides where they mount.
type Deps struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Company     *handler.CompanyHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Talent      *handler.TalentHandler
	Skill       *handler.SkillHandler
	Billing     *handler.BillingHandler
	Notify      *notify.Handler

	AuthMW *middleware.AuthMiddleware
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	d.Health.RegisterRoutes(app)
	app.Get("/ws", d.Notify.HandleWS)

	api := app.Group("/api")
	registerV1(api.Group("/v1"), d)
}

func registerV1(r fiber.Router, d Deps) {
	d.Auth.RegisterRoutes(r.Group("/auth"))

	// Public job board and skill taxonomy.
	d.Job.RegisterRoutes(r)
	d.Skill.RegisterRoutes(r)

	protected := r.Group("", d.AuthMW.Middleware())
	d.Auth.RegisterProtectedRoutes(protected.Group("/auth"))

	companyOnly := protected.Group("", d.AuthMW.RequireRole(user.RoleCompany))
	d.Company.RegisterCompanyRoutes(companyOnly)
	d.Job.RegisterCompanyRoutes(companyOnly)
	d.Application.RegisterCompanyRoutes(companyOnly)
	d.Billing.RegisterCompanyRoutes(companyOnly)

	talentOnly := protected.Group("", d.AuthMW.RequireRole(user.RoleTalent))
	d.Talent.RegisterTalentRoutes(talentOnly)
	d.Application.RegisterTalentRoutes(talentOnly)

	// Registered after /companies/me so the literal segment wins over :id.
	d.Company.RegisterRoutes(r)
}
