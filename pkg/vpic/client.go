package vpic

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vehiclekit/vpic/pkg/cache"
	"github.com/vehiclekit/vpic/pkg/errors"
)

// Client queries the vPIC API and returns flat, name-normalized
// Records. It is safe for concurrent use: all configuration is fixed at
// construction and no per-call state outlives the call.
//
// For typed domain objects instead of records, wrap a Client with
// typed.New.
type Client struct {
	t           *transport
	standardize bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different vPIC instance.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.t.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.t.client = hc }
}

// WithTimeout sets the per-request timeout. Ignored when WithHTTPClient
// supplies a client of its own.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.t.client.Timeout = d }
}

// WithRawNames disables name normalization: records keep the upstream
// API's field spelling exactly as received.
func WithRawNames() Option {
	return func(c *Client) { c.standardize = false }
}

// WithStandardNames enables name normalization, the default. The typed
// client appends it so a stray WithRawNames cannot break typed decoding.
func WithStandardNames() Option {
	return func(c *Client) { c.standardize = true }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.t.userAgent = ua }
}

// WithCache stores successful GET responses in the given backend for
// ttl. Without this option nothing is cached.
func WithCache(backend cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.t.cache = backend
		c.t.cacheTTL = ttl
	}
}

// New creates a client for the public vPIC instance, ready to use with
// no options.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		t: &transport{
			baseURL:   DefaultBaseURL,
			client:    &http.Client{Timeout: defaultTimeout},
			userAgent: "vpic-go",
		},
		standardize: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := errors.ValidateURL(c.t.baseURL); err != nil {
		return nil, err
	}
	return c, nil
}

// fetch runs one GET through the full pipeline: request, envelope
// unwrap, shape unification, name normalization.
func (c *Client) fetch(ctx context.Context, endpoint string, query url.Values, s shape, t Table) ([]*Record, error) {
	body, err := c.t.get(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	return c.unwrapAndNormalize(body, s, t)
}

func (c *Client) unwrapAndNormalize(body []byte, s shape, t Table) ([]*Record, error) {
	records, err := unwrap(body, s)
	if err != nil {
		return nil, err
	}
	if !c.standardize {
		return records, nil
	}
	return t.ApplyAll(records), nil
}

// DecodeOptions refine a VIN decode.
type DecodeOptions struct {
	// ModelYear helps the decoder disambiguate; recommended, required
	// for nothing. Zero means not provided.
	ModelYear int
	// Extended includes variables for other NHTSA programs (NCSA).
	Extended bool
}

// DecodeVIN decodes a complete or partial VIN into a single flat
// record. Partial VINs use '*' for unknown positions.
//
// The upstream endpoint answers with a Variable/Value pair list; the
// pairs are pivoted into one record before normalization, so the result
// looks the same as DecodeVINFlat.
func (c *Client) DecodeVIN(ctx context.Context, vin string, opts *DecodeOptions) (*Record, error) {
	endpoint, query, err := vinDecodeRequest("DecodeVin", vin, opts)
	if err != nil {
		return nil, err
	}
	records, err := c.fetch(ctx, endpoint, query, shapePairs, vehicleAliases)
	if err != nil {
		return nil, err
	}
	return singleRecord(records)
}

// DecodeVINFlat decodes a VIN using the flat-format endpoint, which
// returns one key-value object instead of a Variable/Value list. The
// normalized result is equivalent to DecodeVIN; this variant exists
// because the flat endpoint is cheaper for the upstream service.
func (c *Client) DecodeVINFlat(ctx context.Context, vin string, opts *DecodeOptions) (*Record, error) {
	endpoint, query, err := vinDecodeRequest("DecodeVinValues", vin, opts)
	if err != nil {
		return nil, err
	}
	records, err := c.fetch(ctx, endpoint, query, shapeList, vehicleAliases)
	if err != nil {
		return nil, err
	}
	return singleRecord(records)
}

func vinDecodeRequest(base, vin string, opts *DecodeOptions) (string, url.Values, error) {
	if err := errors.ValidateVIN(vin); err != nil {
		return "", nil, err
	}
	if opts == nil {
		opts = &DecodeOptions{}
	}
	if err := errors.ValidateModelYear(opts.ModelYear); err != nil {
		return "", nil, err
	}
	endpoint := base
	if opts.Extended {
		endpoint += "Extended"
	}
	endpoint += "/" + url.PathEscape(vin)
	query := url.Values{}
	if opts.ModelYear > 0 {
		query.Set("modelyear", strconv.Itoa(opts.ModelYear))
	}
	return endpoint, query, nil
}

func singleRecord(records []*Record) (*Record, error) {
	if len(records) == 0 {
		return nil, errors.NewMapping(nil, "response contained no result rows")
	}
	return records[0], nil
}

// BatchItem is one VIN to decode in a batch, with an optional model
// year (zero means not provided).
type BatchItem struct {
	VIN       string
	ModelYear int
}

// DecodeVINBatch decodes up to 50 VINs in one call. Results come back
// in submitted order, one record per VIN. Over-sized batches are
// rejected locally; no request is issued.
func (c *Client) DecodeVINBatch(ctx context.Context, items []BatchItem) ([]*Record, error) {
	if err := errors.ValidateBatchSize(len(items)); err != nil {
		return nil, err
	}
	lines := make([]string, len(items))
	for i, item := range items {
		if err := errors.ValidateVIN(item.VIN); err != nil {
			return nil, err
		}
		if err := errors.ValidateModelYear(item.ModelYear); err != nil {
			return nil, err
		}
		if item.ModelYear > 0 {
			lines[i] = fmt.Sprintf("%s,%d", item.VIN, item.ModelYear)
		} else {
			lines[i] = item.VIN
		}
	}

	form := url.Values{}
	form.Set("format", "json")
	form.Set("DATA", strings.Join(lines, ";"))
	body, err := c.t.postForm(ctx, "DecodeVINValuesBatch", form)
	if err != nil {
		return nil, err
	}
	return c.unwrapAndNormalize(body, shapePairs, vehicleAliases)
}

// DecodeWMI looks up manufacturer information for a World Manufacturer
// Identifier (3 characters for large-volume manufacturers, 6 for the
// rest).
func (c *Client) DecodeWMI(ctx context.Context, wmi string) (*Record, error) {
	if err := errors.ValidateWMI(wmi); err != nil {
		return nil, err
	}
	records, err := c.fetch(ctx, "DecodeWMI/"+url.PathEscape(wmi), nil, shapeList, wmiAliases)
	if err != nil {
		return nil, err
	}
	return singleRecord(records)
}

// WMIsForManufacturer lists WMIs for a manufacturer (name or numeric
// id as a string), a vehicle type, or both. At least one filter is
// required.
func (c *Client) WMIsForManufacturer(ctx context.Context, manufacturer, vehicleType string) ([]*Record, error) {
	if manufacturer == "" && vehicleType == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "manufacturer or vehicle type is required")
	}
	endpoint := "GetWMIsForManufacturer"
	if manufacturer != "" {
		endpoint += "/" + url.PathEscape(manufacturer)
	}
	query := url.Values{}
	if vehicleType != "" {
		query.Set("vehicleType", vehicleType)
	}
	return c.fetch(ctx, endpoint, query, shapeList, wmiAliases)
}

// AllMakes lists every make registered with vPIC.
func (c *Client) AllMakes(ctx context.Context) ([]*Record, error) {
	return c.fetch(ctx, "GetAllMakes", nil, shapeList, makeAliases)
}

// PartsQuery selects manufacturer regulatory filings.
type PartsQuery struct {
	// CFRPart is "565" (VIN guidance filings) or "566" (manufacturer
	// identification filings).
	CFRPart  string
	FromDate string
	ToDate   string
	Page     int
}

// Parts lists vehicle documentation filed by manufacturers in a date
// range. Results are paginated upstream; see PartsPages to walk pages
// lazily.
func (c *Client) Parts(ctx context.Context, q PartsQuery) ([]*Record, error) {
	if err := errors.ValidateCFRPart(q.CFRPart); err != nil {
		return nil, err
	}
	page := q.Page
	if page == 0 {
		page = 1
	}
	query := url.Values{}
	query.Set("type", q.CFRPart)
	query.Set("fromDate", q.FromDate)
	query.Set("toDate", q.ToDate)
	query.Set("page", strconv.Itoa(page))
	return c.fetch(ctx, "GetParts", query, shapeList, documentAliases)
}

// PartsPages returns a lazy page iterator over Parts results. Each Next
// call issues exactly one request; stopping early costs nothing.
func (c *Client) PartsPages(q PartsQuery) *PageIter {
	start := q.Page
	if start == 0 {
		start = 1
	}
	return newPageIter(start, func(ctx context.Context, page int) ([]*Record, error) {
		q := q
		q.Page = page
		return c.Parts(ctx, q)
	})
}

// AllManufacturers lists manufacturers, optionally filtered by
// manufacturer type (full type name or a substring). Results are
// paginated upstream; see ManufacturerPages.
func (c *Client) AllManufacturers(ctx context.Context, manufacturerType string, page int) ([]*Record, error) {
	if page == 0 {
		page = 1
	}
	query := url.Values{}
	if manufacturerType != "" {
		query.Set("ManufacturerType", manufacturerType)
	}
	query.Set("page", strconv.Itoa(page))
	return c.fetch(ctx, "GetAllManufacturers", query, shapeList, manufacturerAliases)
}

// ManufacturerPages returns a lazy page iterator over AllManufacturers.
func (c *Client) ManufacturerPages(manufacturerType string) *PageIter {
	return newPageIter(1, func(ctx context.Context, page int) ([]*Record, error) {
		return c.AllManufacturers(ctx, manufacturerType, page)
	})
}

// ManufacturerDetails returns detail rows for a manufacturer. Pass a
// numeric id for one manufacturer, a full name for an exact match, or a
// partial name to match several.
func (c *Client) ManufacturerDetails(ctx context.Context, manufacturer string) ([]*Record, error) {
	if manufacturer == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "manufacturer is required")
	}
	return c.fetch(ctx, "GetManufacturerDetails/"+url.PathEscape(manufacturer), nil, shapeList, manufacturerAliases)
}

// MakesForManufacturer lists the makes a manufacturer produces.
func (c *Client) MakesForManufacturer(ctx context.Context, manufacturer string) ([]*Record, error) {
	if manufacturer == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "manufacturer is required")
	}
	return c.fetch(ctx, "GetMakeForManufacturer/"+url.PathEscape(manufacturer), nil, shapeList, makeAliases)
}

// MakesForManufacturerAndYear lists the makes a manufacturer produced
// for one model year.
func (c *Client) MakesForManufacturerAndYear(ctx context.Context, manufacturer string, year int) ([]*Record, error) {
	if manufacturer == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "manufacturer is required")
	}
	if year <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidYear, "year is required")
	}
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	return c.fetch(ctx, "GetMakesForManufacturerAndYear/"+url.PathEscape(manufacturer), query, shapeList, makeAliases)
}

// MakesForVehicleType lists makes producing the given vehicle type
// ("Passenger Car", "Truck", ...). Partial names match all vehicle
// types containing them.
func (c *Client) MakesForVehicleType(ctx context.Context, vehicleType string) ([]*Record, error) {
	if vehicleType == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "vehicle type is required")
	}
	return c.fetch(ctx, "GetMakesForVehicleType/"+url.PathEscape(vehicleType), nil, shapeList, makeAliases)
}

// VehicleTypesForMake lists vehicle types for makes matching a name.
func (c *Client) VehicleTypesForMake(ctx context.Context, make string) ([]*Record, error) {
	if make == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "make is required")
	}
	return c.fetch(ctx, "GetVehicleTypesForMake/"+url.PathEscape(make), nil, shapeList, makeAliases)
}

// VehicleTypesForMakeID lists vehicle types for one make by id.
func (c *Client) VehicleTypesForMakeID(ctx context.Context, makeID int) ([]*Record, error) {
	if makeID <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "make id is required")
	}
	return c.fetch(ctx, "GetVehicleTypesForMakeId/"+strconv.Itoa(makeID), nil, shapeList, makeAliases)
}

// ModelFilter narrows a model listing.
type ModelFilter struct {
	ModelYear   int
	VehicleType string
}

// ModelsForMake lists models for makes matching a name, optionally
// filtered by model year and vehicle type.
func (c *Client) ModelsForMake(ctx context.Context, make string, filter *ModelFilter) ([]*Record, error) {
	if make == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "make is required")
	}
	endpoint := modelsEndpoint("GetModelsForMake", "GetModelsForMakeYear/make", url.PathEscape(make), filter)
	return c.fetch(ctx, endpoint, nil, shapeList, modelAliases)
}

// ModelsForMakeID lists models for one make by id, optionally filtered
// by model year and vehicle type.
func (c *Client) ModelsForMakeID(ctx context.Context, makeID int, filter *ModelFilter) ([]*Record, error) {
	if makeID <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "make id is required")
	}
	endpoint := modelsEndpoint("GetModelsForMakeId", "GetModelsForMakeIdYear/makeId", strconv.Itoa(makeID), filter)
	return c.fetch(ctx, endpoint, nil, shapeList, modelAliases)
}

// modelsEndpoint picks between the plain and the filtered model listing
// endpoints, which encode their filters as path segments.
func modelsEndpoint(plain, filtered, makeSegment string, filter *ModelFilter) string {
	if filter == nil || (filter.ModelYear == 0 && filter.VehicleType == "") {
		return plain + "/" + makeSegment
	}
	endpoint := filtered + "/" + makeSegment
	if filter.ModelYear > 0 {
		endpoint += "/modelyear/" + strconv.Itoa(filter.ModelYear)
	}
	if filter.VehicleType != "" {
		endpoint += "/vehicletype/" + url.PathEscape(filter.VehicleType)
	}
	return endpoint
}

// PlantQuery selects equipment plant codes.
type PlantQuery struct {
	// Year must be 2016 or later; the upstream data starts there.
	Year int
	// EquipmentType is 1 (tires), 3 (brake hoses), 13 (glazing) or
	// 16 (retread).
	EquipmentType int
	// ReportType is New, Updated, Closed or All. Defaults to All.
	ReportType string
}

// EquipmentPlantCodes lists plants that manufacture vehicle equipment.
// Each plant carries a unique three-character DOT code.
func (c *Client) EquipmentPlantCodes(ctx context.Context, q PlantQuery) ([]*Record, error) {
	if q.Year < 2016 {
		return nil, errors.New(errors.ErrCodeInvalidYear, "equipment plant codes start at 2016: %d", q.Year)
	}
	report := q.ReportType
	if report == "" {
		report = "All"
	}
	query := url.Values{}
	query.Set("year", strconv.Itoa(q.Year))
	query.Set("equipmentType", strconv.Itoa(q.EquipmentType))
	query.Set("reportType", report)
	return c.fetch(ctx, "GetEquipmentPlantCodes", query, shapeList, plantAliases)
}

// VehicleVariables lists the vehicle variables vPIC tracks, with their
// data types and descriptions.
func (c *Client) VehicleVariables(ctx context.Context) ([]*Record, error) {
	return c.fetch(ctx, "GetVehicleVariableList", nil, shapeList, variableAliases)
}

// VehicleVariableValues lists the allowed values for one lookup-typed
// vehicle variable, by variable name.
func (c *Client) VehicleVariableValues(ctx context.Context, variableName string) ([]*Record, error) {
	if variableName == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "variable name is required")
	}
	return c.fetch(ctx, "GetVehicleVariableValuesList/"+url.PathEscape(variableName), nil, shapeList, variableAliases)
}

// CanadianSpecQuery selects Canadian Vehicle Specifications rows.
type CanadianSpecQuery struct {
	// Year is the model year, 1971 or later.
	Year int
	Make string
	// Model is optional.
	Model string
	// Units is "Metric" (default) or "US".
	Units string
}

// CanadianVehicleSpecifications returns original vehicle dimensions
// from Transport Canada's collision-investigation database. Each result
// row arrives as a nested list of Name/Value pairs and is pivoted into
// a flat record.
func (c *Client) CanadianVehicleSpecifications(ctx context.Context, q CanadianSpecQuery) ([]*Record, error) {
	if q.Year < 1971 {
		return nil, errors.New(errors.ErrCodeInvalidYear, "canadian specifications start at 1971: %d", q.Year)
	}
	if q.Make == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "make is required")
	}
	if err := errors.ValidateUnits(q.Units); err != nil {
		return nil, err
	}
	units := q.Units
	if units == "" {
		units = "Metric"
	}
	query := url.Values{}
	query.Set("Year", strconv.Itoa(q.Year))
	query.Set("Make", q.Make)
	query.Set("Model", q.Model)
	query.Set("units", units)

	rows, err := c.fetch(ctx, "GetCanadianVehicleSpecifications", query, shapeList, Table{})
	if err != nil {
		return nil, err
	}
	out := make([]*Record, 0, len(rows))
	for _, row := range rows {
		flat, err := pivotSpecs(row)
		if err != nil {
			return nil, err
		}
		if c.standardize {
			flat = canadianAliases.Apply(flat)
		}
		out = append(out, flat)
	}
	return out, nil
}

// pivotSpecs flattens one Canadian specification row, whose dimensions
// hide in a nested "Specs" list of Name/Value pairs.
func pivotSpecs(row *Record) (*Record, error) {
	specs, ok := row.Get("Specs")
	if !ok {
		return row, nil
	}
	list, ok := specs.([]any)
	if !ok {
		return nil, errors.NewMapping(row.Map(), "Specs is not a list")
	}
	flat := NewRecord()
	for _, item := range list {
		pair, ok := item.(*Record)
		if !ok {
			return nil, errors.NewMapping(row.Map(), "Specs entry is not an object")
		}
		name := pair.String("Name")
		if name == "" {
			return nil, errors.NewMapping(pair.Map(), "Specs entry has no Name")
		}
		value, _ := pair.Get("Value")
		flat.Set(name, value)
	}
	return flat, nil
}
