package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Accounts       string `json:"accounts" example:"https://example.com/v1/accounts"`             // URL of Account collection endpoint
	Budgets        string `json:"budgets" example:"https://example.com/v1/budgets"`               // URL of Budget collection endpoint
	Categories     string `json:"categories" example:"https://example.com/v1/categories"`         // URL of Category collection endpoint
	CategoryGroups string `json:"categoryGroups" example:"https://example.com/v1/category-groups"` // URL of Category Group collection endpoint
	MatchRules     string `json:"matchRules" example:"https://example.com/v1/match-rules"`        // URL of Match Rule collection endpoint
	Months         string `json:"months" example:"https://example.com/v1/months"`                 // URL of Month endpoint
	Transactions   string `json:"transactions" example:"https://example.com/v1/transactions"`     // URL of Transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Accounts:       url + "/v1/accounts",
			Budgets:        url + "/v1/budgets",
			Categories:     url + "/v1/categories",
			CategoryGroups: url + "/v1/category-groups",
			MatchRules:     url + "/v1/match-rules",
			Months:         url + "/v1/months",
			Transactions:   url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
