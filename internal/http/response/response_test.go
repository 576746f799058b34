package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	return body
}

func TestErrorAlwaysHTTP200WithRequestID(t *testing.T) {
	c, w := newTestContext()
	c.Set(requestIDKey, "req-1")
	Error(c, CodeNotFound, "not found")

	if w.Code != http.StatusOK {
		t.Fatalf("envelope should use http 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status_code"].(float64) != CodeNotFound || body["msg"] != "not found" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	data := body["data"].(map[string]interface{})
	if data["request_id"] != "req-1" {
		t.Fatalf("request_id missing: %v", data)
	}
}

func TestErrorWithFields(t *testing.T) {
	c, w := newTestContext()
	ErrorWithFields(c, CodeBadRequest, "bad", map[string]string{"mobile": "invalid"})

	body := decodeBody(t, w)
	fields := body["data"].(map[string]interface{})["fields"].(map[string]interface{})
	if fields["mobile"] != "invalid" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestSuccessWithPage(t *testing.T) {
	c, w := newTestContext()
	SuccessWithPage(c, []int{1, 2}, NewPagination(2, 10, 21))

	body := decodeBody(t, w)
	if body["status_code"].(float64) != CodeOK {
		t.Fatalf("unexpected status: %v", body)
	}
	page := body["pagination"].(map[string]interface{})
	if page["total_page"].(float64) != 3 || page["total"].(float64) != 21 {
		t.Fatalf("unexpected pagination: %v", page)
	}
}

func TestNewPaginationZeroPageSize(t *testing.T) {
	if got := NewPagination(1, 0, 5); got.TotalPage != 0 {
		t.Fatalf("zero page size should yield zero pages, got %+v", got)
	}
}
