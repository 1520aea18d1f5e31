package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/personservice-backend/internal/platform/ctxutil"
)

func TestAttachCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	valid := uuid.New()

	cases := []struct {
		name   string
		header string
		want   uuid.UUID
	}{
		{name: "valid", header: valid.String(), want: valid},
		{name: "absent", header: "", want: uuid.Nil},
		{name: "malformed", header: "not-a-uuid", want: uuid.Nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen uuid.UUID
			r := gin.New()
			r.Use(AttachCorrelationID())
			r.GET("/x", func(c *gin.Context) {
				seen = ctxutil.CorrelationID(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set(ctxutil.CorrelationIDHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if seen != tc.want {
				t.Fatalf("ctx correlation id: got=%s want=%s", seen, tc.want)
			}
			if got := rec.Header().Get(ctxutil.CorrelationIDHeader); got != tc.want.String() {
				t.Fatalf("echoed header: got=%q want=%q", got, tc.want.String())
			}
		})
	}
}
