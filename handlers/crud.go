package handlers

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/hatchery_backend/config"
	"github.com/mmdatafocus/hatchery_backend/models"
	"github.com/mmdatafocus/hatchery_backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CrudConfig is the per-entity descriptor behind one registered endpoint set:
// which associations to preload, which columns the listing view filters on,
// and which string columns free-text search covers.
type CrudConfig struct {
	Preloads     []string
	FilterFields []string
	// BoolFilterFields are filter columns stored as booleans. Their query
	// values are parsed so ?field=true and ?field=1 both match; raw string
	// comparison would coerce differently per database.
	BoolFilterFields []string
	SearchFields     []string
}

// associationSyncer is implemented by entities carrying a many-to-many link
// that must be written separately from the row itself.
type associationSyncer interface {
	SyncAssociations(tx *gorm.DB) error
}

// RegisterCRUD wires the uniform endpoint set for one entity type under
// /<path>/. Every entity gets the same list/create/retrieve/update/delete
// contract; the descriptor is the only per-entity variation.
func RegisterCRUD[T any](rg *gin.RouterGroup, path string, cfg CrudConfig) {
	rg.GET("/"+path+"/", listResource[T](cfg))
	rg.POST("/"+path+"/", createResource[T](cfg))
	rg.GET("/"+path+"/:id/", retrieveResource[T](cfg))
	rg.PUT("/"+path+"/:id/", updateResource[T](cfg))
	rg.PATCH("/"+path+"/:id/", updateResource[T](cfg))
	rg.DELETE("/"+path+"/:id/", deleteResource[T](cfg))
}

func listResource[T any](cfg CrudConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var model T
		db := config.GetDB()
		dbCtx := db.WithContext(c.Request.Context()).Model(&model)
		for _, preload := range cfg.Preloads {
			dbCtx = dbCtx.Preload(preload)
		}
		for _, field := range cfg.FilterFields {
			if v, ok := c.GetQuery(field); ok && v != "" {
				dbCtx = dbCtx.Where(field+" = ?", v)
			}
		}
		for _, field := range cfg.BoolFilterFields {
			if v, ok := c.GetQuery(field); ok && v != "" {
				b, err := strconv.ParseBool(v)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": field + " must be a boolean"})
					return
				}
				dbCtx = dbCtx.Where(field+" = ?", b)
			}
		}
		if search := c.Query("search"); search != "" && len(cfg.SearchFields) > 0 {
			conds := make([]string, 0, len(cfg.SearchFields))
			vals := make([]interface{}, 0, len(cfg.SearchFields))
			for _, field := range cfg.SearchFields {
				conds = append(conds, field+" LIKE ?")
				vals = append(vals, "%"+search+"%")
			}
			dbCtx = dbCtx.Where(strings.Join(conds, " OR "), vals...)
		}

		var results []*T
		if err := dbCtx.Order("id").Find(&results).Error; err != nil {
			abortWithError(c, err)
			return
		}
		if results == nil {
			results = []*T{}
		}
		c.JSON(http.StatusOK, results)
	}
}

func createResource[T any](cfg CrudConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var obj T
		if err := c.ShouldBindJSON(&obj); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		db := config.GetDB()
		err := db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit(clause.Associations).Create(&obj).Error; err != nil {
				return err
			}
			if syncer, ok := any(&obj).(associationSyncer); ok {
				return syncer.SyncAssociations(tx)
			}
			return nil
		})
		if err != nil {
			abortWithError(c, err)
			return
		}

		created, err := fetchResource[T](c.Request.Context(), idOf(&obj), cfg)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func retrieveResource[T any](cfg CrudConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		obj, err := fetchResource[T](c.Request.Context(), id, cfg)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, obj)
	}
}

// updateResource serves both PUT and PATCH: the request body is merged over
// the stored record, so partial and full payloads take the same path.
// id and created_at never change.
func updateResource[T any](cfg CrudConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		obj, err := fetchResource[T](c.Request.Context(), id, cfg)
		if err != nil {
			abortWithError(c, err)
			return
		}

		if err := c.ShouldBindJSON(obj); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		setIDField(obj, id)

		db := config.GetDB()
		err = db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit(clause.Associations, "created_at").Save(obj).Error; err != nil {
				return err
			}
			if syncer, ok := any(obj).(associationSyncer); ok {
				return syncer.SyncAssociations(tx)
			}
			return nil
		})
		if err != nil {
			abortWithError(c, err)
			return
		}

		updated, err := fetchResource[T](c.Request.Context(), id, cfg)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteResource[T any](cfg CrudConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		obj, err := fetchResource[T](c.Request.Context(), id, cfg)
		if err != nil {
			abortWithError(c, err)
			return
		}

		db := config.GetDB()
		if err := db.WithContext(c.Request.Context()).Delete(obj).Error; err != nil {
			abortWithError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func fetchResource[T any](ctx context.Context, id int, cfg CrudConfig) (*T, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	for _, preload := range cfg.Preloads {
		dbCtx = dbCtx.Preload(preload)
	}
	var obj T
	if err := dbCtx.First(&obj, id).Error; err != nil {
		return nil, err
	}
	return &obj, nil
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return 0, false
	}
	return id, true
}

func idOf(obj interface{}) int {
	if ident, ok := obj.(models.Identifier); ok {
		return ident.GetId()
	}
	return 0
}

// setIDField pins the primary key after the request body has been merged in,
// so a payload carrying "id" cannot re-target the write.
func setIDField(obj interface{}, id int) {
	v := reflect.ValueOf(obj).Elem()
	field := v.FieldByName("ID")
	if field.IsValid() && field.CanSet() && field.Kind() == reflect.Int {
		field.SetInt(int64(id))
	}
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	case errors.Is(err, utils.ErrorInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger := config.GetLogger()
		config.LogError(logger, "handlers", "crud", c.FullPath(), nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
