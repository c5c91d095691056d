package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"testing"

	"inventra/internal/dto"
	"inventra/internal/handler"
	"inventra/internal/model"
	"inventra/internal/repository"
	"inventra/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCategoryRepo struct {
	categories map[uint]*model.Category
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]dto.CategoryRow, error) {
	rows := make([]dto.CategoryRow, 0)
	for _, c := range r.categories {
		rows = append(rows, dto.CategoryRow{
			ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uint) (*dto.CategoryRow, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &dto.CategoryRow{
		ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt,
	}, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*dto.CategoryRow, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return &dto.CategoryRow{
				ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt,
			}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, id uint, c *model.Category) error {
	if existing, ok := r.categories[id]; ok {
		existing.Name = c.Name
		existing.Description = c.Description
	}
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

func newCategoriesRouter(repo repository.CategoryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewCategoriesHandler(service.NewCategoryService(repo))
	r := gin.New()
	r.GET("/categories", h.Get)
	r.POST("/categories", h.Create)
	r.PUT("/categories", h.Update)
	r.DELETE("/categories", h.Delete)
	return r
}

func TestCategories_List_SortedByName(t *testing.T) {
	repo := newStubCategoryRepo()
	for _, name := range []string{"Peripherals", "Audio", "Displays"} {
		require.NoError(t, repo.Create(context.Background(), &model.Category{Name: name}))
	}
	r := newCategoriesRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []dto.CategoryRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Audio", rows[0].Name)
	assert.Equal(t, "Displays", rows[1].Name)
	assert.Equal(t, "Peripherals", rows[2].Name)
}

func TestCategories_GetByID_MissingReturnsEmptyObject(t *testing.T) {
	r := newCategoriesRouter(newStubCategoryRepo())

	w := doRequest(t, r, http.MethodGet, "/categories?id=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestCategories_Create_DuplicateNameConflicts(t *testing.T) {
	repo := newStubCategoryRepo()
	r := newCategoriesRouter(repo)

	first := doRequest(t, r, http.MethodPost, "/categories", dto.CreateCategoryRequest{Name: "Audio"})
	assert.Equal(t, http.StatusOK, first.Code)

	dup := doRequest(t, r, http.MethodPost, "/categories", dto.CreateCategoryRequest{Name: "Audio"})
	assert.Equal(t, http.StatusConflict, dup.Code)
	assert.JSONEq(t, `{"success": false, "message": "Category already exists"}`, dup.Body.String())
	assert.Len(t, repo.categories, 1)
}

func TestCategories_Create_RequiresName(t *testing.T) {
	r := newCategoriesRouter(newStubCategoryRepo())

	w := doRequest(t, r, http.MethodPost, "/categories", dto.CreateCategoryRequest{Description: "no name"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "required", resp.Fields["Name"])
}

func TestCategories_Update_RenamesRow(t *testing.T) {
	repo := newStubCategoryRepo()
	require.NoError(t, repo.Create(context.Background(), &model.Category{Name: "Audio"}))
	r := newCategoriesRouter(repo)

	w := doRequest(t, r, http.MethodPut, "/categories?id=1", dto.UpdateCategoryRequest{
		Name: "Audio & Video", Description: "speakers, webcams",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Category updated"}`, w.Body.String())
	assert.Equal(t, "Audio & Video", repo.categories[1].Name)
}

func TestCategories_Delete_WithoutIDIsRejected(t *testing.T) {
	r := newCategoriesRouter(newStubCategoryRepo())

	w := doRequest(t, r, http.MethodDelete, "/categories", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Missing or invalid id"}`, w.Body.String())
}
