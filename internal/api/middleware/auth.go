package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

// CompanyIDHeader заголовок с ID компании (тенанта)
const CompanyIDHeader = "X-Company-ID"

type contextKey int

const (
	companyIDKey contextKey = iota
	requestIDKey
)

const (
	msgMissingCompanyID = "отсутствует ID компании"
	msgInvalidCompanyID = "некорректный ID компании"
)

// Auth извлекает ID компании из заголовка X-Company-ID и кладёт его в контекст.
// Без заголовка запрос отклоняется с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(CompanyIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingCompanyID)
			return
		}

		companyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || companyID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidCompanyID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCompanyID(r.Context(), companyID)))
	})
}

// WithCompanyID кладёт ID компании в контекст
func WithCompanyID(ctx context.Context, companyID int64) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

// GetCompanyID возвращает ID компании, положенный Auth
func GetCompanyID(ctx context.Context) (int64, bool) {
	companyID, ok := ctx.Value(companyIDKey).(int64)
	return companyID, ok
}
