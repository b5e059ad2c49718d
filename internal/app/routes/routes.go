package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/controllers"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/app/models/dto/enums"
	"github.com/hanifz/tracerstudy/internal/middleware"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth            *controllers.AuthController
	User            *controllers.UserController
	Fakultas        *controllers.FakultasController
	ProgramStudi    *controllers.ProgramStudiController
	Biodata         *controllers.BiodataController
	Pertanyaan      *controllers.PertanyaanController
	PilihanJawaban  *controllers.PilihanJawabanController
	Jawaban         *controllers.JawabanController
	Wilayah         *controllers.WilayahController
	LokasiPekerjaan *controllers.LokasiPekerjaanController
	MasterData      *controllers.MasterDataController
	Report          *controllers.ReportController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.POST("/logout", c.Auth.Logout)
		auth.POST("/forgot-password", c.Auth.ForgotPassword)
		auth.POST("/reset-password/:token", c.Auth.ResetPassword)
	}

	api.POST("/users/verify-email", c.Auth.VerifyEmail)

	// The PDF export is linked from emails and external dashboards, so
	// it stays public.
	api.GET("/jawaban-kuesioner/pdf/:tahun_akademik", c.Report.ExportJawabanPDF)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.GET("/auth/check-auth", c.Auth.CheckAuth)

		// Own account
		users := authenticated.Group("/users")
		{
			users.GET("/profile", c.User.GetProfile)
			users.GET("/detail", c.User.GetProfile)
			users.PATCH("/profile", c.User.UpdateProfile)
			users.PATCH("/password", c.User.UpdatePassword)
			users.POST("/resend-verification", c.Auth.ResendVerification)
		}

		// Lookups open to every authenticated role
		authenticated.GET("/fakultas/:id", c.Fakultas.GetFakultasByID)
		authenticated.GET("/program-studi/:id", c.ProgramStudi.GetProgramStudiByID)
		authenticated.GET("/pertanyaan/:id", c.Pertanyaan.GetPertanyaanByID)
		authenticated.GET("/pilihan-jawaban", c.PilihanJawaban.GetPilihanJawabanByPertanyaan)
		authenticated.GET("/provinsi", c.Wilayah.GetAllProvinsi)
		authenticated.GET("/kota", c.Wilayah.GetKotaByProvinsi)

		// Survey responses of the current user
		kuesioner := authenticated.Group("/kuesioner/:pertanyaanId/jawaban")
		{
			kuesioner.POST("", c.Jawaban.CreateJawaban)
			kuesioner.GET("", c.Jawaban.GetMyJawaban)
			kuesioner.PATCH("", c.Jawaban.UpdateJawaban)
		}
		authenticated.GET("/jawaban-kuesioner/me", c.Jawaban.GetMyJawabanList)

		// Alumni self-service
		alumni := authenticated.Group("")
		alumni.Use(authMiddleware.RoleRequired(enums.RoleAlumni))
		{
			alumni.POST("/biodata/create", c.Biodata.CreateBiodata)
			alumni.GET("/biodata/me", c.Biodata.GetMyBiodata)
			alumni.PATCH("/biodata/update", c.Biodata.UpdateMyBiodata)

			alumni.POST("/lokasi-pekerjaan/create", c.LokasiPekerjaan.CreateLokasiPekerjaan)
			alumni.GET("/lokasi-pekerjaan/me", c.LokasiPekerjaan.ListMyLokasiPekerjaan)
			alumni.PATCH("/lokasi-pekerjaan/:id", c.LokasiPekerjaan.UpdateLokasiPekerjaan)
			alumni.DELETE("/lokasi-pekerjaan/:id", c.LokasiPekerjaan.DeleteLokasiPekerjaan)
		}

		// Alumni read their own rows, staff read any; the controller
		// enforces ownership for alumni
		lokasiDetail := authenticated.Group("")
		lokasiDetail.Use(authMiddleware.RoleRequired(enums.RoleAlumni, enums.RoleAdmin, enums.RoleDosen))
		lokasiDetail.GET("/lokasi-pekerjaan/:id", c.LokasiPekerjaan.GetLokasiPekerjaanByID)

		// Admin and dosen browse the master data and reporting reads
		staff := authenticated.Group("")
		staff.Use(authMiddleware.RoleRequired(enums.RoleAdmin, enums.RoleDosen))
		{
			staff.GET("/fakultas", c.Fakultas.ListFakultas)
			staff.GET("/program-studi", c.ProgramStudi.ListProgramStudi)
			staff.GET("/pertanyaan", c.Pertanyaan.ListPertanyaan)

			masterData := staff.Group("/master-data")
			{
				masterData.GET("/tahun-akademik", c.MasterData.GetTahunAkademikList)
				masterData.GET("/pertanyaan", c.MasterData.GetPertanyaanByTahun)
				masterData.GET("/pertanyaan-active", c.MasterData.GetPertanyaanActive)
			}
		}

		// Admin-only management
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(enums.RoleAdmin))
		{
			admin.POST("/users/create", c.User.CreateUser)
			admin.GET("/users", c.User.ListUsers)
			admin.GET("/users/detail/:id", c.User.GetUserByID)
			admin.PATCH("/users/update-users/:id", c.User.AdminUpdateUser)

			admin.POST("/fakultas/create", c.Fakultas.CreateFakultas)
			admin.PATCH("/fakultas/:id", c.Fakultas.UpdateFakultas)
			admin.DELETE("/fakultas/:id", c.Fakultas.DeleteFakultas)

			admin.POST("/program-studi/create", c.ProgramStudi.CreateProgramStudi)
			admin.PATCH("/program-studi/:id", c.ProgramStudi.UpdateProgramStudi)
			admin.DELETE("/program-studi/:id", c.ProgramStudi.DeleteProgramStudi)

			admin.GET("/biodata", c.Biodata.ListBiodata)
			admin.GET("/biodata/detail/:id", c.Biodata.GetBiodataByID)
			admin.DELETE("/biodata/:id", c.Biodata.DeleteBiodata)

			admin.POST("/pertanyaan/create", c.Pertanyaan.CreatePertanyaan)
			admin.PATCH("/pertanyaan/:id", c.Pertanyaan.UpdatePertanyaan)
			admin.DELETE("/pertanyaan/:id", c.Pertanyaan.DeletePertanyaan)
			admin.POST("/pertanyaan/copy", c.Pertanyaan.CopyPertanyaan)
			admin.PATCH("/pertanyaan/update-status", c.Pertanyaan.UpdateStatusByTahunAkademik)

			admin.POST("/pilihan-jawaban/create", c.PilihanJawaban.CreatePilihanJawaban)
			admin.PATCH("/pilihan-jawaban/:id", c.PilihanJawaban.UpdatePilihanJawaban)
			admin.DELETE("/pilihan-jawaban/:id", c.PilihanJawaban.DeletePilihanJawaban)

			admin.GET("/jawaban-kuesioner", c.Jawaban.ListJawabanRows)
			admin.DELETE("/jawaban-kuesioner/:id", c.Jawaban.DeleteJawaban)

			admin.GET("/lokasi-pekerjaan", c.LokasiPekerjaan.ListLokasiPekerjaan)
			admin.DELETE("/lokasi-pekerjaan/admin/:id", c.LokasiPekerjaan.AdminDeleteLokasiPekerjaan)

			admin.POST("/provinsi/create", c.Wilayah.ImportProvinsi)
			admin.POST("/kota/create", c.Wilayah.ImportKota)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewStructuredResponse(gin.H{"status": "ok"}, "OK"))
	})
}
