package datasource

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the SimpleJSON protocol surface onto a gin engine.
func NewRouter(svc *Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), CORS())

	router.GET("/", svc.HandleHealth)
	router.POST("/search", svc.HandleSearch)
	router.POST("/query", svc.HandleQuery)
	router.POST("/annotations", svc.HandleAnnotations)

	return router
}

// CORS injects the permissive headers the dashboard expects and answers
// preflight requests directly.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// HandleHealth answers the liveness probe.
func (s *Service) HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// HandleSearch returns the queryable target identifiers. The request
// body is ignored.
func (s *Service) HandleSearch(c *gin.Context) {
	targets, err := s.Search(c.Request.Context())
	if err != nil {
		s.log.Error("search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, targets)
}

// HandleQuery resolves the requested targets into datapoint series.
func (s *Service) HandleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query format"})
		return
	}

	series, err := s.Query(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

// HandleAnnotations returns the placeholder annotation for the range.
func (s *Service) HandleAnnotations(c *gin.Context) {
	var req AnnotationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid annotations format"})
		return
	}

	annotations, err := s.Annotations(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, annotations)
}
