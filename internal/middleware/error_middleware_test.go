package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

func handleErrorStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	HandleAPIError(ctx, err)
	return recorder.Code
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.ErrBiodataAlreadyExists, http.StatusBadRequest},
		{apperrors.ErrJawabanAlreadyExists, http.StatusBadRequest},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{apperrors.ErrFakultasAlreadyExists, http.StatusConflict},
		{apperrors.ErrBiodataNotFound, http.StatusNotFound},
		{apperrors.ErrValidationFailed, http.StatusBadRequest},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
	}
	for _, tc := range cases {
		if got := handleErrorStatus(t, tc.err); got != tc.want {
			t.Errorf("HandleAPIError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	err := fmt.Errorf("jawaban untuk pertanyaan 7: %w", apperrors.ErrJawabanAlreadyExists)
	if got := handleErrorStatus(t, err); got != http.StatusBadRequest {
		t.Errorf("wrapped duplicate jawaban = %d, want %d", got, http.StatusBadRequest)
	}
}
