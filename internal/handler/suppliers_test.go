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

type stubSupplierRepo struct {
	suppliers map[uint]*model.Supplier
	nextID    uint
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uint]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]dto.SupplierRow, error) {
	rows := make([]dto.SupplierRow, 0)
	for _, s := range r.suppliers {
		rows = append(rows, supplierToRow(s))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uint) (*dto.SupplierRow, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := supplierToRow(s)
	return &row, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, id uint, s *model.Supplier) error {
	if existing, ok := r.suppliers[id]; ok {
		existing.Name = s.Name
		existing.ContactPerson = s.ContactPerson
		existing.Email = s.Email
		existing.Phone = s.Phone
		existing.Address = s.Address
	}
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uint) error {
	delete(r.suppliers, id)
	return nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

func supplierToRow(s *model.Supplier) dto.SupplierRow {
	return dto.SupplierRow{
		ID: s.ID, Name: s.Name, ContactPerson: s.ContactPerson,
		Email: s.Email, Phone: s.Phone, Address: s.Address, CreatedAt: s.CreatedAt,
	}
}

func newSuppliersRouter(repo repository.SupplierRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewSuppliersHandler(service.NewSupplierService(repo))
	r := gin.New()
	r.GET("/suppliers", h.Get)
	r.POST("/suppliers", h.Create)
	r.PUT("/suppliers", h.Update)
	r.DELETE("/suppliers", h.Delete)
	return r
}

func TestSuppliers_CreateThenGetByID(t *testing.T) {
	repo := newStubSupplierRepo()
	r := newSuppliersRouter(repo)

	created := doRequest(t, r, http.MethodPost, "/suppliers", dto.CreateSupplierRequest{
		Name:          "Acme Components",
		ContactPerson: "Dana Reyes",
		Email:         "dana@acme.example",
		Phone:         "+1 (555) 123-4567",
		Address:       "12 Industrial Way",
	})
	assert.Equal(t, http.StatusOK, created.Code)
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Supplier added", resp.Message)

	got := doRequest(t, r, http.MethodGet, "/suppliers?id=1", nil)
	var row dto.SupplierRow
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &row))
	assert.Equal(t, "Acme Components", row.Name)
	assert.Equal(t, "dana@acme.example", row.Email)
}

func TestSuppliers_Create_RejectsBadEmail(t *testing.T) {
	r := newSuppliersRouter(newStubSupplierRepo())

	w := doRequest(t, r, http.MethodPost, "/suppliers", dto.CreateSupplierRequest{
		Name:  "Acme Components",
		Email: "not-an-email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp.Fields["Email"])
}

func TestSuppliers_Create_RejectsBadPhone(t *testing.T) {
	r := newSuppliersRouter(newStubSupplierRepo())

	w := doRequest(t, r, http.MethodPost, "/suppliers", dto.CreateSupplierRequest{
		Name:  "Acme Components",
		Phone: "call me maybe",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "phone", resp.Fields["Phone"])
}

func TestSuppliers_Create_EmptyContactFieldsAllowed(t *testing.T) {
	repo := newStubSupplierRepo()
	r := newSuppliersRouter(repo)

	w := doRequest(t, r, http.MethodPost, "/suppliers", dto.CreateSupplierRequest{
		Name: "Bare Minimum Supplies",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, repo.suppliers, 1)
}

func TestSuppliers_List_SortedByName(t *testing.T) {
	repo := newStubSupplierRepo()
	for _, name := range []string{"Zenith Parts", "Acme Components"} {
		require.NoError(t, repo.Create(context.Background(), &model.Supplier{Name: name}))
	}
	r := newSuppliersRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/suppliers", nil)
	var rows []dto.SupplierRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme Components", rows[0].Name)
	assert.Equal(t, "Zenith Parts", rows[1].Name)
}

func TestSuppliers_Update_IDFromBody(t *testing.T) {
	repo := newStubSupplierRepo()
	require.NoError(t, repo.Create(context.Background(), &model.Supplier{Name: "Acme Components"}))
	r := newSuppliersRouter(repo)

	id := uint(1)
	w := doRequest(t, r, http.MethodPut, "/suppliers", dto.UpdateSupplierRequest{
		ID: &id, Name: "Acme Components Ltd",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Supplier updated"}`, w.Body.String())
	assert.Equal(t, "Acme Components Ltd", repo.suppliers[1].Name)
}

func TestSuppliers_Delete_RemovesRow(t *testing.T) {
	repo := newStubSupplierRepo()
	require.NoError(t, repo.Create(context.Background(), &model.Supplier{Name: "Acme Components"}))
	r := newSuppliersRouter(repo)

	w := doRequest(t, r, http.MethodDelete, "/suppliers?id=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.suppliers)
}
