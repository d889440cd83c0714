package handlers

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rotaworks/counter-roster-api/pkg/auth"
	"github.com/rotaworks/counter-roster-api/pkg/database"
	"github.com/rotaworks/counter-roster-api/pkg/models"
	"github.com/rotaworks/counter-roster-api/pkg/roster"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed static/*
var staticEmbed embed.FS

// DateLayout is the wire format for roster dates
const DateLayout = "2006-01-02"

// Handler contains dependencies for the route handlers
type Handler struct {
	DB *gorm.DB
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the API key for roster routes using HMAC
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Authorization")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			c.Abort()
			return
		}

		if len(key) > 7 && key[:7] == "Bearer " {
			key = key[7:]
		}

		userID, err := auth.VerifyHMACKey(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			c.Abort()
			return
		}

		// Fetch or create API key record to track usage
		var apiKey database.APIKey
		h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:       key,
			Name:      userID,
			RateLimit: 10000,
		})
		auth.TouchAPIKey(h.DB, &apiKey)

		c.Set("apiKey", &apiKey)
		c.Set("userID", userID)
		c.Next()
	}
}

// parseRosterInput validates the shared (total, date) inputs. The
// schedule pipeline itself accepts any total >= 1; the 240 practical
// floor is only advisory and lives in ValidateInput.
func parseRosterInput(c *gin.Context, total int, dateStr string) (time.Time, bool) {
	if total < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_volunteers must be at least 1"})
		return time.Time{}, false
	}
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roster_date must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// buildResponse renders a schedule into its JSON wire shape
func buildResponse(s *roster.Schedule) models.RosterResponse {
	resp := models.RosterResponse{
		Date:          s.Date.Format(DateLayout),
		RotationIndex: s.RotationIndex,
		RotationCycle: s.RotationCycle(),
		Counters:      roster.Counters,
		SlotLabels:    roster.SlotLabels(s.Pattern),
		Rows:          make([]models.RosterRow, 0, len(s.Rows)),
	}

	for _, row := range s.Rows {
		cells := make(map[string]string, len(row.Cells))
		for slotIdx, cell := range row.Cells {
			cells[s.Pattern[slotIdx].Label] = roster.RenderCell(cell)
		}
		resp.Rows = append(resp.Rows, models.RosterRow{Counter: row.Counter, Cells: cells})
	}

	for _, entry := range s.Reserves {
		resp.Reserves = append(resp.Reserves, models.ReserveRow{
			Time:     entry.Slot,
			Reserves: entry.Display(),
		})
	}
	return resp
}

// BuildRoster handles the JSON-based roster request
func (h *Handler) BuildRoster(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, ok := parseRosterInput(c, input.TotalVolunteers, input.RosterDate)
	if !ok {
		return
	}

	schedule := roster.BuildSchedule(input.TotalVolunteers, date)

	// Record usage
	h.RecordUsage(c, 1, input.TotalVolunteers)

	c.JSON(http.StatusOK, buildResponse(schedule))
}

// RosterCSV handles the CSV export of a roster
func (h *Handler) RosterCSV(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, ok := parseRosterInput(c, input.TotalVolunteers, input.RosterDate)
	if !ok {
		return
	}

	schedule := roster.BuildSchedule(input.TotalVolunteers, date)

	var outCSV strings.Builder
	if err := schedule.WriteCSV(&outCSV); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize schedule"})
		return
	}

	h.RecordUsage(c, 1, input.TotalVolunteers)

	c.JSON(http.StatusOK, gin.H{
		"filename": roster.CSVFilename,
		"csv":      outCSV.String(),
	})
}

// FindVolunteer handles the duty lookup for a single volunteer
func (h *Handler) FindVolunteer(c *gin.Context) {
	var input models.FindInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, ok := parseRosterInput(c, input.TotalVolunteers, input.RosterDate)
	if !ok {
		return
	}

	target, ok := roster.ParseQuery(input.Query)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query contains no volunteer number"})
		return
	}

	schedule := roster.BuildSchedule(input.TotalVolunteers, date)
	duties := schedule.FindVolunteer(target)

	h.RecordUsage(c, 1, input.TotalVolunteers)

	resp := models.FindResponse{Target: target}
	if len(duties) == 0 {
		resp.Message = "No active duty found (Rest Day)."
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Found = true
	resp.Duties = make([]models.DutyResult, len(duties))
	for i, d := range duties {
		resp.Duties[i] = models.DutyResult{Time: d.Time, Location: d.Location, Role: d.Role}
	}
	c.JSON(http.StatusOK, resp)
}

// RecordUsage records API usage in the database using an efficient upsert
func (h *Handler) RecordUsage(c *gin.Context, rosterCount, volunteerCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format(DateLayout)

	// Use OnConflict for a single-query upsert (supported by both Postgres and SQLite)
	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":    gorm.Expr("request_count + ?", 1),
			"total_rosters":    gorm.Expr("total_rosters + ?", rosterCount),
			"total_volunteers": gorm.Expr("total_volunteers + ?", volunteerCount),
		}),
	}).Create(&database.APIUsage{
		KeyID:           apiKey.ID,
		Date:            today,
		RequestCount:    1,
		TotalRosters:    rosterCount,
		TotalVolunteers: volunteerCount,
	})
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// GenerateKey creates a new API key using the HMAC strategy
func (h *Handler) GenerateKey(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		RateLimit int    `json:"rate_limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if req.RateLimit == 0 {
		req.RateLimit = 10000
	}

	// Generate key using HMAC
	key := auth.GenerateHMACKey(req.Name)

	// Create preview (e.g., sk_...****)
	preview := ""
	if len(key) > 8 {
		preview = key[:3] + "..." + key[len(key)-4:]
	} else {
		preview = "****"
	}

	apiKey := database.APIKey{
		Key:        key,
		Name:       req.Name,
		KeyPreview: preview,
		RateLimit:  req.RateLimit,
	}

	if err := h.DB.Create(&apiKey).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create key record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name": req.Name,
		"key":  key,
	})
}

// ListKeys returns all API keys
func (h *Handler) ListKeys(c *gin.Context) {
	var keys []database.APIKey
	h.DB.Find(&keys)
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// RevokeKey deletes an API key
func (h *Handler) RevokeKey(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.APIKey{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete key"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Key revoked"})
}

// UpdateKeyLimit updates the rate limit for a key
func (h *Handler) UpdateKeyLimit(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		RateLimit int `json:"rate_limit" form:"rate_limit"`
	}

	// Try JSON first, then Form/Query
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rate_limit is required"})
			return
		}
	}

	if req.RateLimit == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate limit"})
		return
	}

	if err := h.DB.Model(&database.APIKey{}).Where("id = ?", id).Update("rate_limit", req.RateLimit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update key limit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rate limit updated successfully"})
}

// GetUsage returns usage stats for a key
func (h *Handler) GetUsage(c *gin.Context) {
	id := c.Param("id")
	var usage []database.APIUsage
	h.DB.Where("key_id = ?", id).Order("date desc").Limit(30).Find(&usage)
	c.JSON(http.StatusOK, gin.H{"usage": usage})
}

// AdminInterface serves the admin web interface from embedded files
func (h *Handler) AdminInterface(c *gin.Context) {
	_ = auth.EnsureAdminExists(h.DB)

	data, err := staticEmbed.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "static/index.html not found in embedded FS"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// GetStaticFS returns the embedded filesystem for static assets
func (h *Handler) GetStaticFS() http.FileSystem {
	sub, err := fs.Sub(staticEmbed, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
