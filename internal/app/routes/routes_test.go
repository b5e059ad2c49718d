package routes

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/app/controllers"
	"github.com/hanifz/tracerstudy/internal/config"
	"github.com/hanifz/tracerstudy/internal/middleware"
	"github.com/hanifz/tracerstudy/internal/pkg/auth"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "tracerstudy-test",
	})
	cfg := &config.Config{}

	c := Controllers{
		Auth:            controllers.NewAuthController(nil, nil, jwtService, cfg),
		User:            controllers.NewUserController(nil),
		Fakultas:        controllers.NewFakultasController(nil),
		ProgramStudi:    controllers.NewProgramStudiController(nil),
		Biodata:         controllers.NewBiodataController(nil),
		Pertanyaan:      controllers.NewPertanyaanController(nil),
		PilihanJawaban:  controllers.NewPilihanJawabanController(nil),
		Jawaban:         controllers.NewJawabanController(nil),
		Wilayah:         controllers.NewWilayahController(nil),
		LokasiPekerjaan: controllers.NewLokasiPekerjaanController(nil),
		MasterData:      controllers.NewMasterDataController(nil),
		Report:          controllers.NewReportController(nil),
	}

	router := gin.New()
	SetupRouter(router, c, middleware.NewAuthMiddleware(jwtService))
	return router
}

func TestSetupRouterRegistersAPISurface(t *testing.T) {
	router := testRouter(t)

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/auth/login",
		"POST /api/auth/logout",
		"POST /api/auth/forgot-password",
		"POST /api/auth/reset-password/:token",
		"GET /api/auth/check-auth",

		"POST /api/users/verify-email",
		"POST /api/users/create",
		"GET /api/users",
		"GET /api/users/profile",
		"GET /api/users/detail",
		"GET /api/users/detail/:id",
		"PATCH /api/users/profile",
		"PATCH /api/users/password",
		"PATCH /api/users/update-users/:id",
		"POST /api/users/resend-verification",

		"POST /api/biodata/create",
		"PATCH /api/biodata/update",
		"GET /api/biodata/me",
		"GET /api/biodata",
		"GET /api/biodata/detail/:id",
		"DELETE /api/biodata/:id",

		"POST /api/fakultas/create",
		"GET /api/fakultas",
		"GET /api/fakultas/:id",
		"PATCH /api/fakultas/:id",
		"DELETE /api/fakultas/:id",

		"POST /api/program-studi/create",
		"GET /api/program-studi",
		"GET /api/program-studi/:id",
		"PATCH /api/program-studi/:id",
		"DELETE /api/program-studi/:id",

		"POST /api/pertanyaan/create",
		"GET /api/pertanyaan",
		"GET /api/pertanyaan/:id",
		"PATCH /api/pertanyaan/:id",
		"DELETE /api/pertanyaan/:id",
		"POST /api/pertanyaan/copy",
		"PATCH /api/pertanyaan/update-status",

		"POST /api/pilihan-jawaban/create",
		"GET /api/pilihan-jawaban",
		"PATCH /api/pilihan-jawaban/:id",
		"DELETE /api/pilihan-jawaban/:id",

		"POST /api/kuesioner/:pertanyaanId/jawaban",
		"GET /api/kuesioner/:pertanyaanId/jawaban",
		"PATCH /api/kuesioner/:pertanyaanId/jawaban",

		"GET /api/jawaban-kuesioner",
		"GET /api/jawaban-kuesioner/me",
		"DELETE /api/jawaban-kuesioner/:id",
		"GET /api/jawaban-kuesioner/pdf/:tahun_akademik",

		"POST /api/provinsi/create",
		"GET /api/provinsi",
		"POST /api/kota/create",
		"GET /api/kota",

		"POST /api/lokasi-pekerjaan/create",
		"GET /api/lokasi-pekerjaan/me",
		"GET /api/lokasi-pekerjaan",
		"GET /api/lokasi-pekerjaan/:id",
		"PATCH /api/lokasi-pekerjaan/:id",
		"DELETE /api/lokasi-pekerjaan/:id",
		"DELETE /api/lokasi-pekerjaan/admin/:id",

		"GET /api/master-data/tahun-akademik",
		"GET /api/master-data/pertanyaan",
		"GET /api/master-data/pertanyaan-active",

		"GET /api/health",
	}
	for _, want := range expected {
		if !registered[want] {
			t.Errorf("route %s is not registered", want)
		}
	}
}

func TestSetupRouterDropsLegacyPaths(t *testing.T) {
	router := testRouter(t)

	for _, route := range router.Routes() {
		if len(route.Path) >= 8 && route.Path[:8] == "/api/v1/" {
			t.Errorf("legacy versioned path still registered: %s %s", route.Method, route.Path)
		}
		if route.Method == "PUT" {
			t.Errorf("mutations use PATCH, found PUT %s", route.Path)
		}
	}
}
