package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/api/handlers"
)

type Deps struct {
	User           *handlers.UserHandler
	WorkExperience *handlers.WorkExperienceHandler
	Education      *handlers.EducationHandler
	Certification  *handlers.CertificationHandler
	Technology     *handlers.TechnologyHandler
	Testimonial    *handlers.TestimonialHandler
	Project        *handlers.ProjectHandler
	Contact        *handlers.ContactHandler
	Count          *handlers.CountHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	api.GET("/portfolio", d.User.List)
	api.POST("/portfolio", d.User.Create)
	api.GET("/portfolio/:id", d.User.Get)
	api.PUT("/portfolio/:id", d.User.Update)
	api.DELETE("/portfolio/:id", d.User.Delete)

	api.GET("/work-experience", d.WorkExperience.List)
	api.POST("/work-experience", d.WorkExperience.Create)
	api.GET("/work-experience/:id", d.WorkExperience.Get)
	api.PUT("/work-experience/:id", d.WorkExperience.Update)
	api.DELETE("/work-experience/:id", d.WorkExperience.Delete)

	api.GET("/education", d.Education.List)
	api.POST("/education", d.Education.Create)
	api.GET("/education/:id", d.Education.Get)
	api.PUT("/education/:id", d.Education.Update)
	api.DELETE("/education/:id", d.Education.Delete)

	api.GET("/certifications", d.Certification.List)
	api.POST("/certifications", d.Certification.Create)
	api.GET("/certifications/:id", d.Certification.Get)
	api.PUT("/certifications/:id", d.Certification.Update)
	api.DELETE("/certifications/:id", d.Certification.Delete)

	api.GET("/technologies", d.Technology.List)
	api.POST("/technologies", d.Technology.Create)
	api.GET("/technologies/:id", d.Technology.Get)
	api.PUT("/technologies/:id", d.Technology.Update)
	api.DELETE("/technologies/:id", d.Technology.Delete)

	api.GET("/testimonials", d.Testimonial.List)
	api.POST("/testimonials", d.Testimonial.Create)
	api.GET("/testimonials/:id", d.Testimonial.Get)
	api.PUT("/testimonials/:id", d.Testimonial.Update)
	api.DELETE("/testimonials/:id", d.Testimonial.Delete)

	api.GET("/projects", d.Project.List)
	api.POST("/projects", d.Project.Create)
	api.GET("/projects/:id", d.Project.Get)
	api.PUT("/projects/:id", d.Project.Update)
	api.DELETE("/projects/:id", d.Project.Delete)

	// singleton, addressed without an id
	api.GET("/contact", d.Contact.Get)
	api.POST("/contact", d.Contact.Create)
	api.PUT("/contact", d.Contact.Update)
	api.DELETE("/contact", d.Contact.Delete)

	api.GET("/count", d.Count.Get)
}
