package typed

// Domain objects returned by Client. Fields are immutable by
// convention: the client hands out fresh values and never retains
// them. The mapstructure tags are the canonical field names and part
// of the compatibility contract; renaming one is a breaking change.

// Make is a vehicle make. ManufacturerID, Manufacturer, VehicleTypeID
// and VehicleType are only populated by endpoints that join those
// tables in.
type Make struct {
	MakeID         int    `mapstructure:"make_id"`
	Make           string `mapstructure:"make"`
	ManufacturerID *int   `mapstructure:"manufacturer_id"`
	Manufacturer   string `mapstructure:"manufacturer"`
	VehicleTypeID  *int   `mapstructure:"vehicle_type_id"`
	VehicleType    string `mapstructure:"vehicle_type"`
}

// Model is a vehicle model.
type Model struct {
	ModelID       int    `mapstructure:"model_id"`
	Model         string `mapstructure:"model"`
	MakeID        *int   `mapstructure:"make_id"`
	Make          string `mapstructure:"make"`
	VehicleTypeID *int   `mapstructure:"vehicle_type_id"`
	VehicleType   string `mapstructure:"vehicle_type"`
}

// Manufacturer is a summary row from the manufacturer listing.
type Manufacturer struct {
	ManufacturerID         int    `mapstructure:"manufacturer_id"`
	Manufacturer           string `mapstructure:"manufacturer"`
	ManufacturerCommonName string `mapstructure:"manufacturer_common_name"`
	Country                string `mapstructure:"country"`
}

// ManufacturerType is one of a manufacturer's registered roles.
type ManufacturerType struct {
	Name string `mapstructure:"name"`
}

// VehicleType is a vehicle type, either standalone or nested inside a
// manufacturer detail row.
type VehicleType struct {
	VehicleTypeID *int   `mapstructure:"vehicle_type_id"`
	VehicleType   string `mapstructure:"vehicle_type"`
	MakeID        *int   `mapstructure:"make_id"`
	Make          string `mapstructure:"make"`
	GVWRFrom      string `mapstructure:"gvwr_from"`
	GVWRTo        string `mapstructure:"gvwr_to"`
	IsPrimary     *bool  `mapstructure:"is_primary"`
}

// ManufacturerDetail is a full manufacturer record including contact
// information and registered vehicle types.
type ManufacturerDetail struct {
	ManufacturerID           int                `mapstructure:"manufacturer_id"`
	Manufacturer             string             `mapstructure:"manufacturer"`
	ManufacturerCommonName   string             `mapstructure:"manufacturer_common_name"`
	ManufacturerTypes        []ManufacturerType `mapstructure:"manufacturer_types"`
	VehicleTypes             []VehicleType      `mapstructure:"vehicle_types"`
	Address                  string             `mapstructure:"address"`
	Address2                 string             `mapstructure:"address2"`
	City                     string             `mapstructure:"city"`
	ContactEmail             string             `mapstructure:"contact_email"`
	ContactFax               string             `mapstructure:"contact_fax"`
	ContactPhone             string             `mapstructure:"contact_phone"`
	Country                  string             `mapstructure:"country"`
	DBAs                     string             `mapstructure:"dbas"`
	LastUpdated              string             `mapstructure:"last_updated"`
	OtherManufacturerDetails string             `mapstructure:"other_manufacturer_details"`
	PostalCode               string             `mapstructure:"postal_code"`
	PrimaryProduct           string             `mapstructure:"primary_product"`
	PrincipalFirstName       string             `mapstructure:"principal_first_name"`
	PrincipalLastName        string             `mapstructure:"principal_last_name"`
	PrincipalPosition        string             `mapstructure:"principal_position"`
	StateProvince            string             `mapstructure:"state_province"`
	SubmittedName            string             `mapstructure:"submitted_name"`
	SubmittedOn              string             `mapstructure:"submitted_on"`
	SubmittedPosition        string             `mapstructure:"submitted_position"`
}

// WorldManufacturerIndex describes a WMI registration.
type WorldManufacturerIndex struct {
	WMI                   string `mapstructure:"wmi"`
	ManufacturerID        *int   `mapstructure:"manufacturer_id"`
	Manufacturer          string `mapstructure:"manufacturer"`
	CommonName            string `mapstructure:"common_name"`
	Make                  string `mapstructure:"make"`
	ParentCompanyName     string `mapstructure:"parent_company_name"`
	VehicleType           string `mapstructure:"vehicle_type"`
	Country               string `mapstructure:"country"`
	URL                   string `mapstructure:"url"`
	CreatedOn             string `mapstructure:"created_on"`
	UpdatedOn             string `mapstructure:"updated_on"`
	DateAvailableToPublic string `mapstructure:"date_available_to_public"`
}

// PlantCode is an equipment manufacturing plant with its DOT code.
type PlantCode struct {
	DOTCode       string `mapstructure:"dot_code"`
	Name          string `mapstructure:"name"`
	Address       string `mapstructure:"address"`
	City          string `mapstructure:"city"`
	Country       string `mapstructure:"country"`
	OldDotCode    string `mapstructure:"old_dot_code"`
	PostalCode    string `mapstructure:"postal_code"`
	StateProvince string `mapstructure:"state_province"`
	Status        string `mapstructure:"status"`
}

// Document is a manufacturer regulatory filing.
type Document struct {
	CoverLetterURL string `mapstructure:"cover_letter_url"`
	LetterDate     string `mapstructure:"letter_date"`
	ManufacturerID int    `mapstructure:"manufacturer_id"`
	Manufacturer   string `mapstructure:"manufacturer"`
	Name           string `mapstructure:"name"`
	URL            string `mapstructure:"url"`
	Type           string `mapstructure:"type"`
	ModelYearFrom  string `mapstructure:"model_year_from"`
	ModelYearTo    string `mapstructure:"model_year_to"`
}

// Variable is a vehicle variable tracked by the decoder.
type Variable struct {
	ID          int    `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	GroupName   string `mapstructure:"group_name"`
	DataType    string `mapstructure:"data_type"`
	Description string `mapstructure:"description"`
}

// Value is one allowed value of a lookup-typed vehicle variable.
type Value struct {
	ElementName string `mapstructure:"element_name"`
	ID          int    `mapstructure:"id"`
	Name        string `mapstructure:"name"`
}

// CanadianSpecification is one row of Transport Canada's original
// vehicle dimensions database. Dimension fields keep the upstream
// unit convention selected in the query.
type CanadianSpecification struct {
	Make          string `mapstructure:"make"`
	Model         string `mapstructure:"model"`
	ModelYear     string `mapstructure:"model_year"`
	OverallLength string `mapstructure:"overall_length"`
	OverallWidth  string `mapstructure:"overall_width"`
	OverallHeight string `mapstructure:"overall_height"`
	Wheelbase     string `mapstructure:"wheelbase"`
	CurbWeight    string `mapstructure:"curb_weight"`
}

// Vehicle is a decoded VIN. Every field is a string, mirroring the
// upstream convention: the decoder reports everything as text, with ""
// for variables the vehicle type doesn't populate.
type Vehicle struct {
	ABS                                 string `mapstructure:"abs"`
	ActiveSafetySysNote                 string `mapstructure:"active_safety_sys_note"`
	AdaptiveCruiseControl               string `mapstructure:"adaptive_cruise_control"`
	AdaptiveDrivingBeam                 string `mapstructure:"adaptive_driving_beam"`
	AdaptiveHeadlights                  string `mapstructure:"adaptive_headlights"`
	AdditionalErrorText                 string `mapstructure:"additional_error_text"`
	AirBagLocCurtain                    string `mapstructure:"air_bag_loc_curtain"`
	AirBagLocFront                      string `mapstructure:"air_bag_loc_front"`
	AirBagLocKnee                       string `mapstructure:"air_bag_loc_knee"`
	AirBagLocSeatCushion                string `mapstructure:"air_bag_loc_seat_cushion"`
	AirBagLocSide                       string `mapstructure:"air_bag_loc_side"`
	AutoReverseSystem                   string `mapstructure:"auto_reverse_system"`
	AutomaticPedestrianAlertingSound    string `mapstructure:"automatic_pedestrian_alerting_sound"`
	AxleConfiguration                   string `mapstructure:"axle_configuration"`
	Axles                               string `mapstructure:"axles"`
	BasePrice                           string `mapstructure:"base_price"`
	BatteryA                            string `mapstructure:"battery_a"`
	BatteryATo                          string `mapstructure:"battery_a_to"`
	BatteryCells                        string `mapstructure:"battery_cells"`
	BatteryInfo                         string `mapstructure:"battery_info"`
	BatteryKWh                          string `mapstructure:"battery_kwh"`
	BatteryKWhTo                        string `mapstructure:"battery_kwh_to"`
	BatteryModules                      string `mapstructure:"battery_modules"`
	BatteryPacks                        string `mapstructure:"battery_packs"`
	BatteryType                         string `mapstructure:"battery_type"`
	BatteryV                            string `mapstructure:"battery_v"`
	BatteryVTo                          string `mapstructure:"battery_v_to"`
	BedLengthIN                         string `mapstructure:"bed_length_in"`
	BedType                             string `mapstructure:"bed_type"`
	BlindSpotIntervention               string `mapstructure:"blind_spot_intervention"`
	BlindSpotMon                        string `mapstructure:"blind_spot_mon"`
	BodyCabType                         string `mapstructure:"body_cab_type"`
	BodyClass                           string `mapstructure:"body_class"`
	BrakeSystemDesc                     string `mapstructure:"brake_system_desc"`
	BrakeSystemType                     string `mapstructure:"brake_system_type"`
	BusFloorConfigType                  string `mapstructure:"bus_floor_config_type"`
	BusLength                           string `mapstructure:"bus_length"`
	BusType                             string `mapstructure:"bus_type"`
	CanAACN                             string `mapstructure:"can_aacn"`
	CIB                                 string `mapstructure:"cib"`
	CashForClunkers                     string `mapstructure:"cash_for_clunkers"`
	ChargerLevel                        string `mapstructure:"charger_level"`
	ChargerPowerKW                      string `mapstructure:"charger_power_kw"`
	CoolingType                         string `mapstructure:"cooling_type"`
	CurbWeightLB                        string `mapstructure:"curb_weight_lb"`
	CustomMotorcycleType                string `mapstructure:"custom_motorcycle_type"`
	DaytimeRunningLight                 string `mapstructure:"daytime_running_light"`
	DestinationMarket                   string `mapstructure:"destination_market"`
	DisplacementCC                      string `mapstructure:"displacement_cc"`
	DisplacementCI                      string `mapstructure:"displacement_ci"`
	DisplacementL                       string `mapstructure:"displacement_l"`
	Doors                               string `mapstructure:"doors"`
	DriveType                           string `mapstructure:"drive_type"`
	DriverAssist                        string `mapstructure:"driver_assist"`
	DynamicBrakeSupport                 string `mapstructure:"dynamic_brake_support"`
	EDR                                 string `mapstructure:"edr"`
	ESC                                 string `mapstructure:"esc"`
	EVDriveUnit                         string `mapstructure:"ev_drive_unit"`
	ElectrificationLevel                string `mapstructure:"electrification_level"`
	EngineConfiguration                 string `mapstructure:"engine_configuration"`
	EngineCycles                        string `mapstructure:"engine_cycles"`
	EngineCylinders                     string `mapstructure:"engine_cylinders"`
	EngineHP                            string `mapstructure:"engine_hp"`
	EngineHPTo                          string `mapstructure:"engine_hp_to"`
	EngineKW                            string `mapstructure:"engine_kw"`
	EngineManufacturer                  string `mapstructure:"engine_manufacturer"`
	EngineModel                         string `mapstructure:"engine_model"`
	EntertainmentSystem                 string `mapstructure:"entertainment_system"`
	ErrorCode                           string `mapstructure:"error_code"`
	ErrorText                           string `mapstructure:"error_text"`
	ForwardCollisionWarning             string `mapstructure:"forward_collision_warning"`
	FuelInjectionType                   string `mapstructure:"fuel_injection_type"`
	FuelTypePrimary                     string `mapstructure:"fuel_type_primary"`
	FuelTypeSecondary                   string `mapstructure:"fuel_type_secondary"`
	GCWRFrom                            string `mapstructure:"gcwr_from"`
	GCWRTo                              string `mapstructure:"gcwr_to"`
	GVWRFrom                            string `mapstructure:"gvwr_from"`
	GVWRTo                              string `mapstructure:"gvwr_to"`
	KeylessIgnition                     string `mapstructure:"keyless_ignition"`
	LaneCenteringAssistance             string `mapstructure:"lane_centering_assistance"`
	LaneDepartureWarning                string `mapstructure:"lane_departure_warning"`
	LaneKeepSystem                      string `mapstructure:"lane_keep_system"`
	LowerBeamHeadlampLightSource        string `mapstructure:"lower_beam_headlamp_light_source"`
	Make                                string `mapstructure:"make"`
	MakeID                              string `mapstructure:"make_id"`
	Manufacturer                        string `mapstructure:"manufacturer"`
	ManufacturerID                      string `mapstructure:"manufacturer_id"`
	Model                               string `mapstructure:"model"`
	ModelID                             string `mapstructure:"model_id"`
	ModelYear                           string `mapstructure:"model_year"`
	MotorcycleChassisType               string `mapstructure:"motorcycle_chassis_type"`
	MotorcycleSuspensionType            string `mapstructure:"motorcycle_suspension_type"`
	NCSABodyType                        string `mapstructure:"ncsa_body_type"`
	NCSAMake                            string `mapstructure:"ncsa_make"`
	NCSAMapExcApprovedBy                string `mapstructure:"ncsa_map_exc_approved_by"`
	NCSAMapExcApprovedOn                string `mapstructure:"ncsa_map_exc_approved_on"`
	NCSAMappingException                string `mapstructure:"ncsa_mapping_exception"`
	NCSAModel                           string `mapstructure:"ncsa_model"`
	NCSANote                            string `mapstructure:"ncsa_note"`
	Note                                string `mapstructure:"note"`
	OtherBusInfo                        string `mapstructure:"other_bus_info"`
	OtherEngineInfo                     string `mapstructure:"other_engine_info"`
	OtherMotorcycleInfo                 string `mapstructure:"other_motorcycle_info"`
	OtherRestraintSystemInfo            string `mapstructure:"other_restraint_system_info"`
	OtherTrailerInfo                    string `mapstructure:"other_trailer_info"`
	ParkAssist                          string `mapstructure:"park_assist"`
	PedestrianAutomaticEmergencyBraking string `mapstructure:"pedestrian_automatic_emergency_braking"`
	PlantCity                           string `mapstructure:"plant_city"`
	PlantCompanyName                    string `mapstructure:"plant_company_name"`
	PlantCountry                        string `mapstructure:"plant_country"`
	PlantState                          string `mapstructure:"plant_state"`
	PossibleValues                      string `mapstructure:"possible_values"`
	Pretensioner                        string `mapstructure:"pretensioner"`
	RearAutomaticEmergencyBraking       string `mapstructure:"rear_automatic_emergency_braking"`
	RearCrossTrafficAlert               string `mapstructure:"rear_cross_traffic_alert"`
	RearVisibilitySystem                string `mapstructure:"rear_visibility_system"`
	SAEAutomationLevel                  string `mapstructure:"sae_automation_level"`
	SAEAutomationLevelTo                string `mapstructure:"sae_automation_level_to"`
	SeatBeltsAll                        string `mapstructure:"seat_belts_all"`
	SeatRows                            string `mapstructure:"seat_rows"`
	Seats                               string `mapstructure:"seats"`
	SemiautomaticHeadlampBeamSwitching  string `mapstructure:"semiautomatic_headlamp_beam_switching"`
	Series                              string `mapstructure:"series"`
	Series2                             string `mapstructure:"series2"`
	SteeringLocation                    string `mapstructure:"steering_location"`
	SuggestedVIN                        string `mapstructure:"suggested_vin"`
	TPMS                                string `mapstructure:"tpms"`
	TopSpeedMPH                         string `mapstructure:"top_speed_mph"`
	TrackWidth                          string `mapstructure:"track_width"`
	TractionControl                     string `mapstructure:"traction_control"`
	TrailerBodyType                     string `mapstructure:"trailer_body_type"`
	TrailerLength                       string `mapstructure:"trailer_length"`
	TrailerType                         string `mapstructure:"trailer_type"`
	TransmissionSpeeds                  string `mapstructure:"transmission_speeds"`
	TransmissionStyle                   string `mapstructure:"transmission_style"`
	Trim                                string `mapstructure:"trim"`
	Trim2                               string `mapstructure:"trim2"`
	Turbo                               string `mapstructure:"turbo"`
	VIN                                 string `mapstructure:"vin"`
	ValveTrainDesign                    string `mapstructure:"valve_train_design"`
	VehicleType                         string `mapstructure:"vehicle_type"`
	WheelBaseLong                       string `mapstructure:"wheel_base_long"`
	WheelBaseShort                      string `mapstructure:"wheel_base_short"`
	WheelBaseType                       string `mapstructure:"wheel_base_type"`
	WheelSizeFront                      string `mapstructure:"wheel_size_front"`
	WheelSizeRear                       string `mapstructure:"wheel_size_rear"`
	Wheels                              string `mapstructure:"wheels"`
	Windows                             string `mapstructure:"windows"`
}
