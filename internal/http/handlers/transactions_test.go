package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/domain"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type fakeStore struct {
	nextID int64
	txs    []domain.Transaction
	err    error
}

func (s *fakeStore) Create(_ context.Context, tx *domain.Transaction) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	tx.ID = s.nextID
	tx.CreatedAt = time.Now().UTC()
	s.txs = append(s.txs, *tx)
	return nil
}

func (s *fakeStore) GetByUserID(_ context.Context, userID string) ([]domain.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []domain.Transaction{}
	for i := len(s.txs) - 1; i >= 0; i-- {
		if s.txs[i].UserID == userID {
			out = append(out, s.txs[i])
		}
	}
	return out, nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) (*domain.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i, tx := range s.txs {
		if tx.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return &tx, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeStore) SummaryByUserID(_ context.Context, userID string) (*domain.Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	var sum domain.Summary
	for _, tx := range s.txs {
		if tx.UserID != userID {
			continue
		}
		sum.Balance += tx.Amount
		if tx.Amount > 0 {
			sum.Income += tx.Amount
		} else if tx.Amount < 0 {
			sum.Expense += tx.Amount
		}
	}
	return &sum, nil
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Transactions: service.NewTransactionService(store)}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/transactions", h.CreateTransaction)
	api.GET("/transactions/:userId", h.ListTransactions)
	api.GET("/transactions/summary/:userId", h.GetSummary)
	api.DELETE("/transactions/:id", h.DeleteTransaction)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateTransactionEndpoint(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	rr := doJSON(t, r, http.MethodPost, "/api/transactions",
		`{"userId":"u1","title":"Salary","amount":2500,"category":"income"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var tx domain.Transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &tx); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tx.ID == 0 || tx.UserID != "u1" || tx.Amount != 2500 {
		t.Fatalf("unexpected created record: %+v", tx)
	}
}

func TestCreateTransactionBadRequests(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	cases := []struct {
		name string
		body string
	}{
		{"missing category", `{"userId":"u1","title":"Coffee","amount":-3}`},
		{"missing amount", `{"userId":"u1","title":"Coffee","category":"food"}`},
		{"amount not numeric", `{"userId":"u1","title":"Coffee","amount":"three","category":"food"}`},
		{"not json", `title=Coffee`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, r, http.MethodPost, "/api/transactions", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			var resp map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil || resp["message"] == "" {
				t.Fatalf("expected {message} envelope, got %s", rr.Body.String())
			}
		})
	}
}

func TestListAndSummaryEndpoints(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	for _, body := range []string{
		`{"userId":"1","title":"A","amount":100,"category":"income"}`,
		`{"userId":"1","title":"B","amount":-30,"category":"food"}`,
		`{"userId":"2","title":"C","amount":50,"category":"income"}`,
	} {
		if rr := doJSON(t, r, http.MethodPost, "/api/transactions", body); rr.Code != http.StatusCreated {
			t.Fatalf("setup create failed: %d", rr.Code)
		}
	}

	rr := doJSON(t, r, http.MethodGet, "/api/transactions/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var txs []domain.Transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &txs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(txs) != 2 || txs[0].Title != "B" || txs[1].Title != "A" {
		t.Fatalf("expected [B, A], got %+v", txs)
	}

	rr = doJSON(t, r, http.MethodGet, "/api/transactions/summary/1", "")
	var sum domain.Summary
	if err := json.Unmarshal(rr.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.Balance != 70 || sum.Income != 100 || sum.Expense != -30 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	// unknown user: empty list, zero summary
	rr = doJSON(t, r, http.MethodGet, "/api/transactions/nobody", "")
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestDeleteTransactionEndpoint(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	rr := doJSON(t, r, http.MethodPost, "/api/transactions",
		`{"userId":"u1","title":"Coffee","amount":-4.2,"category":"food"}`)
	var created domain.Transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rr = doJSON(t, r, http.MethodDelete, "/api/transactions/abc", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: expected 400, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodDelete, "/api/transactions/9999", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", rr.Code)
	}

	rr = doJSON(t, r, http.MethodDelete, "/api/transactions/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Message     string             `json:"message"`
		DeletedItem domain.Transaction `json:"deletedItem"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if resp.Message == "" || resp.DeletedItem.ID != created.ID {
		t.Fatalf("unexpected delete response: %s", rr.Body.String())
	}
}

func TestStoreFailureIsGeneric500(t *testing.T) {
	store := &fakeStore{err: context.DeadlineExceeded}
	r := newTestRouter(store)

	rr := doJSON(t, r, http.MethodGet, "/api/transactions/u1", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "internal server error") {
		t.Fatalf("internal detail must not leak: %s", rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "deadline") {
		t.Fatalf("internal detail leaked: %s", rr.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	hh := NewHealthHandler(nil)
	r.GET("/api/health", hh.Health)

	rr := doJSON(t, r, http.MethodGet, "/api/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil || resp["status"] != "ok" {
		t.Fatalf("expected {\"status\":\"ok\"}, got %s", rr.Body.String())
	}
}
