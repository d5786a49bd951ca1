package vpic

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vehiclekit/vpic/pkg/cache"
	"github.com/vehiclekit/vpic/pkg/errors"
)

// newTestClient starts a test server and returns a client pointed at
// it. requests counts every request the server sees.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := New(append([]Option{WithBaseURL(srv.URL + "/")}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, &requests
}

func jsonResponse(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

const fordDecodeBody = `{
	"Count": 1,
	"Message": "Results returned successfully",
	"Results": [{
		"VIN": "1FTMW1T88MFA00001",
		"Make": "FORD",
		"MakeID": "460",
		"Model": "F-150",
		"ModelID": "1801",
		"ModelYear": "2021",
		"BodyClass": "Pickup",
		"Series": "",
		"Trim": ""
	}]
}`

func TestDecodeVINFlat(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/DecodeVinValues/1FTMW1T88MFA00001" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("format") != "json" {
			t.Error("missing format=json")
		}
		if r.URL.Query().Get("modelyear") != "2021" {
			t.Errorf("modelyear = %q", r.URL.Query().Get("modelyear"))
		}
		jsonResponse(w, fordDecodeBody)
	})

	rec, err := client.DecodeVINFlat(context.Background(), "1FTMW1T88MFA00001", &DecodeOptions{ModelYear: 2021})
	if err != nil {
		t.Fatalf("DecodeVINFlat: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"vin", "1FTMW1T88MFA00001"},
		{"make", "FORD"},
		{"model_year", "2021"},
		{"body_class", "Pickup"},
		{"model_id", "1801"},
	}
	for _, tt := range tests {
		if got := rec.String(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDecodeVINPairEndpoint(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/DecodeVin/1FTMW1T88MFA00001" {
			t.Errorf("path = %q", r.URL.Path)
		}
		jsonResponse(w, `{
			"Count": 3,
			"Message": "ok",
			"Results": [
				{"Variable": "Make", "Value": "FORD", "VariableId": 26},
				{"Variable": "ModelYear", "Value": "2021", "VariableId": 29},
				{"Variable": "BodyClass", "Value": "Pickup", "VariableId": 5}
			]
		}`)
	})

	rec, err := client.DecodeVIN(context.Background(), "1FTMW1T88MFA00001", nil)
	if err != nil {
		t.Fatalf("DecodeVIN: %v", err)
	}
	if rec.String("make") != "FORD" || rec.String("model_year") != "2021" || rec.String("body_class") != "Pickup" {
		t.Errorf("record = %v", rec.Map())
	}
}

func TestDecodeVINValidationSkipsRequest(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, fordDecodeBody)
	})

	tests := []struct {
		name     string
		vin      string
		year     int
		wantCode errors.Code
	}{
		{"empty vin", "", 0, errors.ErrCodeInvalidVIN},
		{"short vin", "1FT", 0, errors.ErrCodeInvalidVIN},
		{"pre-standard year", "1FTMW1T88MFA00001", 1979, errors.ErrCodeInvalidYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.DecodeVINFlat(context.Background(), tt.vin, &DecodeOptions{ModelYear: tt.year})
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %q, want %q", got, tt.wantCode)
			}
		})
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestRawNamesToggle(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, `{
			"Count": 1,
			"Message": "ok",
			"Results": [{"Make_ID": 441, "Make_Name": "TESLA", "Model_ID": 1685, "Model_Name": "Model S"}]
		}`)
	}

	normalized, _ := newTestClient(t, handler)
	records, err := normalized.ModelsForMake(context.Background(), "tesla", nil)
	if err != nil {
		t.Fatalf("ModelsForMake: %v", err)
	}
	if _, ok := records[0].Get("model_id"); !ok {
		t.Errorf("normalized keys = %v, want model_id", records[0].Keys())
	}

	raw, _ := newTestClient(t, handler, WithRawNames())
	records, err = raw.ModelsForMake(context.Background(), "tesla", nil)
	if err != nil {
		t.Fatalf("ModelsForMake: %v", err)
	}
	if _, ok := records[0].Get("Model_ID"); !ok {
		t.Errorf("raw keys = %v, want upstream spelling untouched", records[0].Keys())
	}
	if _, ok := records[0].Get("model_id"); ok {
		t.Error("raw client must not rename keys")
	}
}

func TestDecodeVINBatchRequest(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("DATA"); got != "1FTMW1T88MFA00001,2021;5YJ3E1EA8MF000001" {
			t.Errorf("DATA = %q", got)
		}
		jsonResponse(w, `{
			"Count": 2,
			"Message": "ok",
			"Results": [
				{"Variable": "Make", "Value": "FORD", "BatchPosition": 1},
				{"Variable": "Make", "Value": "TESLA", "BatchPosition": 2}
			]
		}`)
	})

	records, err := client.DecodeVINBatch(context.Background(), []BatchItem{
		{VIN: "1FTMW1T88MFA00001", ModelYear: 2021},
		{VIN: "5YJ3E1EA8MF000001"},
	})
	if err != nil {
		t.Fatalf("DecodeVINBatch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].String("make") != "FORD" || records[1].String("make") != "TESLA" {
		t.Errorf("records out of order: %v, %v", records[0].Map(), records[1].Map())
	}
}

func TestDecodeVINBatchRejectsOversizedLocally(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should never be reached")
	})

	items := make([]BatchItem, errors.MaxBatchSize+1)
	for i := range items {
		items[i] = BatchItem{VIN: fmt.Sprintf("1FTMW1T88MFA%05d", i)}
	}

	_, err := client.DecodeVINBatch(context.Background(), items)
	if got := errors.GetCode(err); got != errors.ErrCodeBatchTooLarge {
		t.Errorf("code = %q, want %q", got, errors.ErrCodeBatchTooLarge)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestDecodeWMI(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/DecodeWMI/1FT" {
			t.Errorf("path = %q", r.URL.Path)
		}
		jsonResponse(w, `{
			"Count": 1,
			"Message": "ok",
			"Results": [{
				"CommonName": "Ford",
				"MakeName": "FORD",
				"ManufacturerName": "FORD MOTOR COMPANY, USA",
				"ParentCompanyName": "",
				"URL": "http://www.ford.com/",
				"VehicleType": "Truck "
			}]
		}`)
	})

	rec, err := client.DecodeWMI(context.Background(), "1FT")
	if err != nil {
		t.Fatalf("DecodeWMI: %v", err)
	}
	if rec.String("manufacturer") != "FORD MOTOR COMPANY, USA" {
		t.Errorf("manufacturer = %q", rec.String("manufacturer"))
	}
	if rec.String("common_name") != "Ford" {
		t.Errorf("common_name = %q", rec.String("common_name"))
	}
	if rec.String("vehicle_type") != "Truck" {
		t.Errorf("vehicle_type = %q, want trimmed", rec.String("vehicle_type"))
	}

	if _, err := client.DecodeWMI(context.Background(), "1F"); !errors.Is(err, errors.ErrCodeInvalidWMI) {
		t.Errorf("DecodeWMI(1F) = %v, want INVALID_WMI", err)
	}
}

func TestPageIterFetchesLazily(t *testing.T) {
	pages := map[string]string{
		"1": `{"Count": 2, "Message": "ok", "Results": [{"Mfr_ID": 1, "Mfr_Name": "A"}, {"Mfr_ID": 2, "Mfr_Name": "B"}]}`,
		"2": `{"Count": 1, "Message": "ok", "Results": [{"Mfr_ID": 3, "Mfr_Name": "C"}]}`,
		"3": `{"Count": 0, "Message": "ok", "Results": []}`,
	}
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, pages[r.URL.Query().Get("page")])
	})

	it := client.ManufacturerPages("")
	if n := requests.Load(); n != 0 {
		t.Fatalf("iterator construction issued %d requests, want 0", n)
	}

	first, err := it.Next(context.Background())
	if err != nil || len(first) != 2 {
		t.Fatalf("Next() = %d records, err %v", len(first), err)
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("requests after first page = %d, want 1", n)
	}

	second, err := it.Next(context.Background())
	if err != nil || len(second) != 1 {
		t.Fatalf("Next() = %d records, err %v", len(second), err)
	}
	if second[0].String("manufacturer") != "C" {
		t.Errorf("second page = %v", second[0].Map())
	}

	last, err := it.Next(context.Background())
	if err != nil || last != nil {
		t.Fatalf("Next() at end = %v, %v", last, err)
	}
	if n := requests.Load(); n != 3 {
		t.Errorf("requests = %d, want 3", n)
	}

	// Exhausted iterators never touch the server again.
	if _, err := it.Next(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := requests.Load(); n != 3 {
		t.Errorf("requests after exhaustion = %d, want 3", n)
	}
}

func TestTransportErrorMapping(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/GetAllMakes":
			w.WriteHeader(http.StatusNotFound)
		case "/GetVehicleVariableList":
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		}
	})

	_, err := client.AllMakes(context.Background())
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("404 err = %v, want NOT_FOUND", err)
	}

	_, err = client.VehicleVariables(context.Background())
	rle, ok := errors.AsRateLimited(err)
	if !ok {
		t.Fatalf("429 err = %v, want RateLimitedError", err)
	}
	if rle.RetryAfter != 30 {
		t.Errorf("RetryAfter = %d, want 30", rle.RetryAfter)
	}
}

func TestCachedResponsesSkipServer(t *testing.T) {
	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer backend.Close()

	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, `{"Count": 1, "Message": "ok", "Results": [{"MakeId": 441, "MakeName": "TESLA"}]}`)
	}, WithCache(backend, time.Hour))

	for i := 0; i < 2; i++ {
		records, err := client.AllMakes(context.Background())
		if err != nil {
			t.Fatalf("AllMakes: %v", err)
		}
		if records[0].String("make") != "TESLA" {
			t.Errorf("make = %q", records[0].String("make"))
		}
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("server saw %d requests, want 1 (second hit cached)", n)
	}
}

func TestCanadianSpecificationsPivot(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("Year") != "2020" || q.Get("Make") != "Honda" || q.Get("units") != "Metric" {
			t.Errorf("query = %v", q)
		}
		jsonResponse(w, `{
			"Count": 1,
			"Message": "ok",
			"Results": [{
				"Specs": [
					{"Name": "Make", "Value": "HONDA"},
					{"Name": "Model", "Value": "CIVIC"},
					{"Name": "MYR", "Value": "2020"},
					{"Name": "OL", "Value": "460"}
				]
			}]
		}`)
	})

	records, err := client.CanadianVehicleSpecifications(context.Background(), CanadianSpecQuery{Year: 2020, Make: "Honda"})
	if err != nil {
		t.Fatalf("CanadianVehicleSpecifications: %v", err)
	}
	rec := records[0]
	if rec.String("make") != "HONDA" || rec.String("model_year") != "2020" || rec.String("overall_length") != "460" {
		t.Errorf("record = %v", rec.Map())
	}
}

func TestQueryValidationSkipsRequest(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, `{"Count": 0, "Message": "ok", "Results": []}`)
	})

	tests := []struct {
		name string
		call func(context.Context) error
	}{
		{"parts missing cfr part", func(ctx context.Context) error {
			_, err := client.Parts(ctx, PartsQuery{})
			return err
		}},
		{"parts unknown cfr part", func(ctx context.Context) error {
			_, err := client.Parts(ctx, PartsQuery{CFRPart: "999"})
			return err
		}},
		{"canadian specs unknown units", func(ctx context.Context) error {
			_, err := client.CanadianVehicleSpecifications(ctx, CanadianSpecQuery{
				Year:  2020,
				Make:  "Honda",
				Units: "Imperial",
			})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(context.Background())
			if got := errors.GetCode(err); got != errors.ErrCodeInvalidInput {
				t.Errorf("code = %q, want %q", got, errors.ErrCodeInvalidInput)
			}
		})
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	if _, err := New(WithBaseURL("ftp://example.com")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("New = %v, want INVALID_INPUT", err)
	}
}
