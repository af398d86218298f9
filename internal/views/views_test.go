package views

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/esophai/internal/models"
)

func TestRenderer_Pages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		name     string
		page     Page
		contains []string
		missing  []string
	}{
		{
			name:     PageAnalyze,
			page:     Page{Flashes: []models.Flash{{Category: models.FlashError, Message: "Invalid file type"}}},
			contains: []string{`action="/upload_file"`, `name="file"`, `class="flash error"`, "Invalid file type"},
			missing:  []string{"/logout"},
		},
		{
			name:     PageLogin,
			page:     Page{Title: "Login", MultiUser: true},
			contains: []string{`name="username_or_email"`, `name="password"`, `href="/register"`},
		},
		{
			name:     PageRegister,
			page:     Page{MultiUser: true},
			contains: []string{`name="username"`, `name="email"`, `name="first_name"`, `name="last_name"`},
		},
		{
			name:     PageResults,
			page:     Page{Data: &models.AnalysisResult{Label: "Esophageal Cancer", Confidence: 91.5, ImageFileName: "tempabc.png"}},
			contains: []string{"Esophageal Cancer", "91.50%", `src="/upload/tempabc.png"`, `href="/"`},
		},
		{
			name: PageDashboard,
			page: Page{MultiUser: true, Username: "admin", Data: &models.Dashboard{
				User:           &models.User{Username: "admin", FirstName: "Admin"},
				RecentAnalyses: []models.Analysis{{OriginalFilename: "scan.png", Prediction: "Non-Esophageal Cancer", Confidence: 80, ImagePath: "tempx.png", CreatedAt: time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)}},
				TotalAnalyses:  1,
				AdminStats:     &models.AdminStats{TotalUsers: 2, TotalAnalyses: 1},
			}},
			contains: []string{"Welcome, Admin", "Total analyses: 1", `class="total-users">2<`, "scan.png", "80.00%", "2024-01-02 03:04", "/logout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.Render(rec, http.StatusOK, tt.name, tt.page)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestRenderer_DashboardWithoutAdminStats(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Render(rec, http.StatusOK, PageDashboard, Page{MultiUser: true, Username: "user", Data: &models.Dashboard{
		User: &models.User{Username: "user"},
	}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "admin-stats")
	assert.Contains(t, rec.Body.String(), "No analyses yet")
}

func TestRenderer_EscapesUserInput(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Render(rec, http.StatusOK, PageAnalyze, Page{Flashes: []models.Flash{{Category: models.FlashInfo, Message: "<script>x</script>"}}})

	assert.NotContains(t, rec.Body.String(), "<script>x</script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Render(rec, http.StatusOK, "missing", Page{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
