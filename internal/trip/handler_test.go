package trip

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fkhayef/tripsplit/internal/breakdown"
)

func newTestRouter() http.Handler {
	service := NewService(NewRepository(), breakdown.NewService("$"))
	return NewHandler(service).Routes()
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeTrip(t *testing.T, rec *httptest.ResponseRecorder) *Trip {
	t.Helper()
	var resp struct {
		Success bool  `json:"success"`
		Data    *Trip `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data == nil {
		t.Fatalf("response has no data: %s", rec.Body.String())
	}
	return resp.Data
}

func TestHandlerSessionFlow(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}
	trip := decodeTrip(t, rec)

	rec = doJSON(t, router, http.MethodPut, "/"+trip.ID+"/cost", `{"total_cost": 300}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set cost status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if got := decodeTrip(t, rec).TotalCost; got != 300 {
		t.Errorf("total cost = %v, want 300", got)
	}

	rec = doJSON(t, router, http.MethodPost, "/"+trip.ID+"/participants", `{"name": "Carol", "nights_stayed": 0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add participant status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if got := len(decodeTrip(t, rec).Participants); got != 3 {
		t.Errorf("got %d participants, want 3", got)
	}

	rec = doJSON(t, router, http.MethodPost, "/"+trip.ID+"/compute", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("compute status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var computeResp struct {
		Data []breakdown.Row `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &computeResp); err != nil {
		t.Fatalf("failed to decode compute response: %v", err)
	}
	if len(computeResp.Data) != 3 {
		t.Fatalf("got %d rows, want 3", len(computeResp.Data))
	}
	// 300 over 4 night-units plus 100 groceries over 3 people.
	carol := computeResp.Data[2]
	if carol.Name != "Carol" {
		t.Fatalf("rows out of order: %+v", computeResp.Data)
	}
	if carol.TotalOwed != 33.33 {
		t.Errorf("Carol total owed = %v, want 33.33", carol.TotalOwed)
	}

	rec = doJSON(t, router, http.MethodDelete, "/"+trip.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/"+trip.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestHandlerExport(t *testing.T) {
	router := newTestRouter()

	trip := decodeTrip(t, doJSON(t, router, http.MethodPost, "/", ""))
	if rec := doJSON(t, router, http.MethodPut, "/"+trip.ID+"/cost", `{"total_cost": 300}`); rec.Code != http.StatusOK {
		t.Fatalf("set cost status = %d, want 200", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/"+trip.ID+"/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, breakdown.CSVFilename) {
		t.Errorf("Content-Disposition = %q, want filename %s", cd, breakdown.CSVFilename)
	}
	if !strings.HasPrefix(rec.Body.String(), "Participant,Nights Stayed,") {
		t.Errorf("csv body = %q", rec.Body.String())
	}
}

func TestHandlerExportDeletedSession(t *testing.T) {
	router := newTestRouter()

	trip := decodeTrip(t, doJSON(t, router, http.MethodPost, "/", ""))
	if rec := doJSON(t, router, http.MethodDelete, "/"+trip.ID, ""); rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}

	// A deleted session must produce an error envelope, not CSV headers
	// over an empty body.
	rec := doJSON(t, router, http.MethodGet, "/"+trip.ID+"/export", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("export after delete status = %d, want 404, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != "" {
		t.Errorf("Content-Disposition = %q, want empty", cd)
	}
}

func TestHandlerNotFoundAndBadRequests(t *testing.T) {
	router := newTestRouter()

	if rec := doJSON(t, router, http.MethodGet, "/missing", ""); rec.Code != http.StatusNotFound {
		t.Errorf("get missing trip status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodPost, "/missing/compute", ""); rec.Code != http.StatusNotFound {
		t.Errorf("compute missing trip status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodDelete, "/missing", ""); rec.Code != http.StatusNotFound {
		t.Errorf("delete missing trip status = %d, want 404", rec.Code)
	}

	trip := decodeTrip(t, doJSON(t, router, http.MethodPost, "/", ""))

	if rec := doJSON(t, router, http.MethodPut, "/"+trip.ID+"/participants/nope", `{"name": "X"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric index status = %d, want 400", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodDelete, "/"+trip.ID+"/participants/9", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("out-of-range index status = %d, want 400", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodDelete, "/"+trip.ID+"/expenses/Nothing", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown expense status = %d, want 400", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodPost, "/"+trip.ID+"/participants", `{"nights_stayed": -3}`); rec.Code != http.StatusBadRequest {
		t.Errorf("negative nights status = %d, want 400", rec.Code)
	}
}
