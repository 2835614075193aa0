package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCategoryGroupRoutes registers the routes for category groups with
// the RouterGroup that is passed.
func RegisterCategoryGroupRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryGroupList)
		r.GET("", GetCategoryGroups)
		r.POST("", CreateCategoryGroups)
	}

	// Category group with ID
	{
		r.OPTIONS("/:id", OptionsCategoryGroupDetail)
		r.GET("/:id", GetCategoryGroup)
		r.PATCH("/:id", UpdateCategoryGroup)
		r.DELETE("/:id", DeleteCategoryGroup)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Groups
// @Success		204
// @Router			/v1/category-groups [options]
func OptionsCategoryGroupList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Groups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [options]
func OptionsCategoryGroupDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CategoryGroup{})
}

// @Summary		Create category groups
// @Description	Creates new category groups
// @Tags			Category Groups
// @Accept			json
// @Produce		json
// @Success		201				{object}	CategoryGroupCreateResponse
// @Failure		400				{object}	CategoryGroupCreateResponse
// @Failure		404				{object}	CategoryGroupCreateResponse
// @Failure		500				{object}	CategoryGroupCreateResponse
// @Param			categoryGroups	body		[]CategoryGroupEditable	true	"Category Groups"
// @Router			/v1/category-groups [post]
func CreateCategoryGroups(c *gin.Context) {
	var editables []CategoryGroupEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryGroupCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryGroupCreateResponse{}

	for _, editable := range editables {
		group := editable.model()

		err = models.DB.Create(&group).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryGroup(c, group)
		r.Data = append(r.Data, CategoryGroupResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List category groups
// @Description	Returns a list of category groups
// @Tags			Category Groups
// @Produce		json
// @Success		200	{object}	CategoryGroupListResponse
// @Failure		400	{object}	CategoryGroupListResponse
// @Failure		500	{object}	CategoryGroupListResponse
// @Router			/v1/category-groups [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			income		query	bool	false	"Is this the income group?"
// @Param			archived	query	bool	false	"Is the category group archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Category Group returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Category Groups to return. Defaults to 50."
func GetCategoryGroups(c *gin.Context) {
	var filter CategoryGroupQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("sort_order ASC, name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Category Groups and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var groups []models.CategoryGroup
	err := q.Find(&groups).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CategoryGroup, 0, len(groups))
	for _, group := range groups {
		data = append(data, newCategoryGroup(c, group))
	}

	c.JSON(http.StatusOK, CategoryGroupListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category group
// @Description	Returns a specific category group
// @Tags			Category Groups
// @Produce		json
// @Success		200	{object}	CategoryGroupResponse
// @Failure		400	{object}	CategoryGroupResponse
// @Failure		404	{object}	CategoryGroupResponse
// @Failure		500	{object}	CategoryGroupResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [get]
func GetCategoryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	var group models.CategoryGroup
	err = models.DB.First(&group, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryGroup(c, group)
	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &data})
}

// @Summary		Update category group
// @Description	Updates an existing category group. Only values to be updated need to be specified.
// @Tags			Category Groups
// @Accept			json
// @Produce		json
// @Success		200				{object}	CategoryGroupResponse
// @Failure		400				{object}	CategoryGroupResponse
// @Failure		404				{object}	CategoryGroupResponse
// @Failure		500				{object}	CategoryGroupResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categoryGroup	body		CategoryGroupEditable	true	"Category Group"
// @Router			/v1/category-groups/{id} [patch]
func UpdateCategoryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	var group models.CategoryGroup
	err = models.DB.First(&group, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryGroupEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	var data CategoryGroupEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&group).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	r := newCategoryGroup(c, group)
	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &r})
}

// @Summary		Delete category group
// @Description	Deletes a category group. The categories in the group are not deleted with it, they keep referencing the deleted group.
// @Tags			Category Groups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [delete]
func DeleteCategoryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var group models.CategoryGroup
	err = models.DB.First(&group, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&group).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
