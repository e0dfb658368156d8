package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateProductRejectsMissingFields(t *testing.T) {
	r := gin.New()
	r.POST("/products", CreateProduct)

	tests := []struct {
		name string
		body string
	}{
		{"empty", `{}`},
		{"no sizes", `{"id":"choc-cake","name":"Chocolate Cake","description":"Rich","category":"Cakes","image":"img"}`},
		{"empty sizes", `{"id":"choc-cake","name":"Chocolate Cake","description":"Rich","category":"Cakes","image":"img","sizes":[]}`},
		{"no business id", `{"name":"Chocolate Cake","description":"Rich","category":"Cakes","image":"img","sizes":[{"size":"1 Pound","price":1500}]}`},
	}
	for _, tt := range tests {
		if w := postJSON(r, "/products", tt.body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, w.Code)
		}
	}
}

func TestUpdateProductRejectsBadIDs(t *testing.T) {
	r := gin.New()
	r.PUT("/products", UpdateProduct)

	for name, body := range map[string]string{
		"missing _id": `{"name":"New Name"}`,
		"bad _id":     `{"_id":"nope","name":"New Name"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, w.Code)
		}
	}
}

func TestDeleteProductRequiresID(t *testing.T) {
	r := gin.New()
	r.DELETE("/products", DeleteProduct)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products?id=not-hex", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", w.Code)
	}
}
