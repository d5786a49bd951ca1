package typed

import (
	"context"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// Client is a typed facade over vpic.Client. Every operation delegates
// to the record client with name normalization forced on, then decodes
// each record into its domain struct. The client holds no state of its
// own and is safe for concurrent use.
type Client struct {
	raw *vpic.Client
}

// New creates a typed client. Options are passed through to the
// underlying record client; WithRawNames is overridden because typed
// decoding depends on canonical names.
func New(opts ...vpic.Option) (*Client, error) {
	raw, err := vpic.New(append(opts, vpic.WithStandardNames())...)
	if err != nil {
		return nil, err
	}
	return &Client{raw: raw}, nil
}

// Raw returns the underlying record client.
func (c *Client) Raw() *vpic.Client {
	return c.raw
}

// DecodeVIN decodes a complete or partial VIN into a Vehicle.
func (c *Client) DecodeVIN(ctx context.Context, vin string, opts *vpic.DecodeOptions) (*Vehicle, error) {
	rec, err := c.raw.DecodeVINFlat(ctx, vin, opts)
	if err != nil {
		return nil, err
	}
	var v Vehicle
	if err := decodeRecord(rec, "vin", &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeVINBatch decodes up to 50 VINs in one call, returning vehicles
// in submitted order.
func (c *Client) DecodeVINBatch(ctx context.Context, items []vpic.BatchItem) ([]*Vehicle, error) {
	records, err := c.raw.DecodeVINBatch(ctx, items)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Vehicle](records, "vin")
}

// DecodeWMI looks up the manufacturer behind a World Manufacturer
// Identifier.
func (c *Client) DecodeWMI(ctx context.Context, wmi string) (*WorldManufacturerIndex, error) {
	rec, err := c.raw.DecodeWMI(ctx, wmi)
	if err != nil {
		return nil, err
	}
	fixupWMI(rec)
	if rec.String("wmi") == "" {
		rec.Set("wmi", wmi)
	}
	var w WorldManufacturerIndex
	if err := decodeRecord(rec, "manufacturer", &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// WMIsForManufacturer lists WMI registrations for a manufacturer, a
// vehicle type, or both.
func (c *Client) WMIsForManufacturer(ctx context.Context, manufacturer, vehicleType string) ([]*WorldManufacturerIndex, error) {
	records, err := c.raw.WMIsForManufacturer(ctx, manufacturer, vehicleType)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		fixupWMI(rec)
	}
	return decodeRecords[WorldManufacturerIndex](records, "manufacturer")
}

// fixupWMI reconciles the WMI endpoints' remaining inconsistency: the
// listing endpoint reports the manufacturer under generic id/name keys.
func fixupWMI(rec *vpic.Record) {
	if rec.String("manufacturer_id") == "" {
		if v, ok := rec.Get("id"); ok {
			rec.Set("manufacturer_id", v)
		}
	}
	if rec.String("manufacturer") == "" {
		if v, ok := rec.Get("name"); ok {
			rec.Set("manufacturer", v)
		}
	}
}

// AllMakes lists every make registered with vPIC.
func (c *Client) AllMakes(ctx context.Context) ([]*Make, error) {
	records, err := c.raw.AllMakes(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Make](records, "make_id")
}

// MakesForManufacturer lists the makes a manufacturer produces.
func (c *Client) MakesForManufacturer(ctx context.Context, manufacturer string) ([]*Make, error) {
	records, err := c.raw.MakesForManufacturer(ctx, manufacturer)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Make](records, "make_id")
}

// MakesForManufacturerAndYear lists the makes a manufacturer produced
// for one model year.
func (c *Client) MakesForManufacturerAndYear(ctx context.Context, manufacturer string, year int) ([]*Make, error) {
	records, err := c.raw.MakesForManufacturerAndYear(ctx, manufacturer, year)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Make](records, "make_id")
}

// MakesForVehicleType lists makes producing the given vehicle type.
func (c *Client) MakesForVehicleType(ctx context.Context, vehicleType string) ([]*Make, error) {
	records, err := c.raw.MakesForVehicleType(ctx, vehicleType)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Make](records, "make_id")
}

// VehicleTypesForMake lists vehicle types for makes matching a name.
func (c *Client) VehicleTypesForMake(ctx context.Context, make string) ([]*VehicleType, error) {
	records, err := c.raw.VehicleTypesForMake(ctx, make)
	if err != nil {
		return nil, err
	}
	return decodeRecords[VehicleType](records, "vehicle_type")
}

// VehicleTypesForMakeID lists vehicle types for one make by id.
func (c *Client) VehicleTypesForMakeID(ctx context.Context, makeID int) ([]*VehicleType, error) {
	records, err := c.raw.VehicleTypesForMakeID(ctx, makeID)
	if err != nil {
		return nil, err
	}
	return decodeRecords[VehicleType](records, "vehicle_type")
}

// ModelsForMake lists models for makes matching a name.
func (c *Client) ModelsForMake(ctx context.Context, make string, filter *vpic.ModelFilter) ([]*Model, error) {
	records, err := c.raw.ModelsForMake(ctx, make, filter)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Model](records, "model_id")
}

// ModelsForMakeID lists models for one make by id.
func (c *Client) ModelsForMakeID(ctx context.Context, makeID int, filter *vpic.ModelFilter) ([]*Model, error) {
	records, err := c.raw.ModelsForMakeID(ctx, makeID, filter)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Model](records, "model_id")
}

// AllManufacturers lists manufacturers, optionally filtered by type.
func (c *Client) AllManufacturers(ctx context.Context, manufacturerType string, page int) ([]*Manufacturer, error) {
	records, err := c.raw.AllManufacturers(ctx, manufacturerType, page)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Manufacturer](records, "manufacturer_id")
}

// ManufacturerDetails returns full manufacturer records.
func (c *Client) ManufacturerDetails(ctx context.Context, manufacturer string) ([]*ManufacturerDetail, error) {
	records, err := c.raw.ManufacturerDetails(ctx, manufacturer)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		fixupNestedVehicleTypes(rec)
	}
	return decodeRecords[ManufacturerDetail](records, "manufacturer_id")
}

// fixupNestedVehicleTypes reconciles nested vehicle type rows, which
// carry the type name under a generic "name" key instead of the
// standalone endpoints' "vehicle_type".
func fixupNestedVehicleTypes(rec *vpic.Record) {
	vts, ok := rec.Get("vehicle_types")
	if !ok {
		return
	}
	list, ok := vts.([]any)
	if !ok {
		return
	}
	for _, item := range list {
		vt, ok := item.(*vpic.Record)
		if !ok {
			continue
		}
		if vt.String("vehicle_type") == "" {
			if name, ok := vt.Get("name"); ok {
				vt.Set("vehicle_type", name)
			}
		}
	}
}

// EquipmentPlantCodes lists equipment manufacturing plants.
func (c *Client) EquipmentPlantCodes(ctx context.Context, q vpic.PlantQuery) ([]*PlantCode, error) {
	records, err := c.raw.EquipmentPlantCodes(ctx, q)
	if err != nil {
		return nil, err
	}
	return decodeRecords[PlantCode](records, "dot_code")
}

// Parts lists manufacturer regulatory filings.
func (c *Client) Parts(ctx context.Context, q vpic.PartsQuery) ([]*Document, error) {
	records, err := c.raw.Parts(ctx, q)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Document](records, "manufacturer_id")
}

// VehicleVariables lists the vehicle variables vPIC tracks.
func (c *Client) VehicleVariables(ctx context.Context) ([]*Variable, error) {
	records, err := c.raw.VehicleVariables(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Variable](records, "id")
}

// VehicleVariableValues lists the allowed values of a lookup variable.
func (c *Client) VehicleVariableValues(ctx context.Context, variableName string) ([]*Value, error) {
	records, err := c.raw.VehicleVariableValues(ctx, variableName)
	if err != nil {
		return nil, err
	}
	return decodeRecords[Value](records, "id")
}

// CanadianVehicleSpecifications returns original vehicle dimensions
// from Transport Canada's database.
func (c *Client) CanadianVehicleSpecifications(ctx context.Context, q vpic.CanadianSpecQuery) ([]*CanadianSpecification, error) {
	records, err := c.raw.CanadianVehicleSpecifications(ctx, q)
	if err != nil {
		return nil, err
	}
	return decodeRecords[CanadianSpecification](records, "make")
}
