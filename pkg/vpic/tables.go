package vpic

// Alias tables per response shape. The upstream API spells the same
// field differently per endpoint ("Make_ID", "MakeID", "MakeId"), so
// each shape gets its own explicit table instead of a heuristic
// case-converter. Keeping the entries literal makes upstream spelling
// changes auditable: add a row here, nothing else moves.

// commonAliases covers spellings that recur across lookup endpoints.
var commonAliases = Table{
	"ID": "id",
	"Id": "id",

	"Make_ID":   "make_id",
	"MakeID":    "make_id",
	"MakeId":    "make_id",
	"Make_Name": "make",
	"MakeName":  "make",
	"Make":      "make",

	"Mfr_ID":           "manufacturer_id",
	"MfrId":            "manufacturer_id",
	"ManufacturerId":   "manufacturer_id",
	"Mfr_Name":         "manufacturer",
	"MfrName":          "manufacturer",
	"ManufacturerName": "manufacturer",
	"Manufacturer":     "manufacturer",
	"Mfr_CommonName":   "manufacturer_common_name",

	"Model_ID":   "model_id",
	"ModelID":    "model_id",
	"ModelId":    "model_id",
	"Model_Name": "model",
	"ModelName":  "model",
	"Model":      "model",

	"VehicleTypeId":   "vehicle_type_id",
	"VehicleTypeName": "vehicle_type",
	"VehicleType":     "vehicle_type",

	"Name":    "name",
	"Country": "country",
}

// makeAliases covers GetAllMakes, GetMakesForManufacturer(AndYear) and
// GetMakesForVehicleType rows.
var makeAliases = merge(commonAliases)

// modelAliases covers GetModelsForMake(Id)(Year) rows.
var modelAliases = merge(commonAliases)

// manufacturerAliases covers GetAllManufacturers and
// GetManufacturerDetails rows, including the nested VehicleTypes and
// ManufacturerTypes lists.
var manufacturerAliases = merge(commonAliases, Table{
	"Address":                  "address",
	"Address2":                 "address2",
	"City":                     "city",
	"ContactEmail":             "contact_email",
	"ContactFax":               "contact_fax",
	"ContactPhone":             "contact_phone",
	"DBAs":                     "dbas",
	"EquipmentItems":           "equipment_items",
	"GVWRFrom":                 "gvwr_from",
	"GVWRTo":                   "gvwr_to",
	"IsPrimary":                "is_primary",
	"LastUpdated":              "last_updated",
	"ManufacturerTypes":        "manufacturer_types",
	"OtherManufacturerDetails": "other_manufacturer_details",
	"PostalCode":               "postal_code",
	"PrimaryProduct":           "primary_product",
	"PrincipalFirstName":       "principal_first_name",
	"PrincipalLastName":        "principal_last_name",
	"PrincipalPosition":        "principal_position",
	"StateProvince":            "state_province",
	"SubmittedName":            "submitted_name",
	"SubmittedOn":              "submitted_on",
	"SubmittedPosition":        "submitted_position",
	"VehicleTypes":             "vehicle_types",
})

// wmiAliases covers DecodeWMI and GetWMIsForManufacturer rows.
var wmiAliases = merge(commonAliases, Table{
	"CommonName":            "common_name",
	"CreatedOn":             "created_on",
	"DateAvailableToPublic": "date_available_to_public",
	"ParentCompanyName":     "parent_company_name",
	"UpdatedOn":             "updated_on",
	"URL":                   "url",
	"WMI":                   "wmi",
})

// plantAliases covers GetEquipmentPlantCodes rows.
var plantAliases = merge(commonAliases, Table{
	"Address":       "address",
	"City":          "city",
	"DOTCode":       "dot_code",
	"OldDotCode":    "old_dot_code",
	"PostalCode":    "postal_code",
	"StateProvince": "state_province",
	"Status":        "status",
})

// documentAliases covers GetParts rows.
var documentAliases = merge(commonAliases, Table{
	"CoverLetterURL": "cover_letter_url",
	"LetterDate":     "letter_date",
	"ModelYearFrom":  "model_year_from",
	"ModelYearTo":    "model_year_to",
	"Type":           "type",
	"URL":            "url",
})

// variableAliases covers GetVehicleVariableList and
// GetVehicleVariableValuesList rows.
var variableAliases = merge(commonAliases, Table{
	"DataType":    "data_type",
	"Description": "description",
	"ElementName": "element_name",
	"GroupName":   "group_name",
})

// canadianAliases covers the pivoted GetCanadianVehicleSpecifications
// pairs. The upstream spec names are terse codes; only the ones with an
// obvious canonical name are renamed, the rest pass through.
var canadianAliases = Table{
	"Make":  "make",
	"Model": "model",
	"MYR":   "model_year",
	"OL":    "overall_length",
	"OW":    "overall_width",
	"OH":    "overall_height",
	"WB":    "wheelbase",
	"CW":    "curb_weight",
}

// vehicleAliases covers decoded VIN fields, both the flat
// DecodeVinValues keys and the pivoted DecodeVin variable names. This
// is the canonical attribute surface of typed.Vehicle.
var vehicleAliases = merge(commonAliases, Table{
	"ABS":                                 "abs",
	"ActiveSafetySysNote":                 "active_safety_sys_note",
	"AdaptiveCruiseControl":               "adaptive_cruise_control",
	"AdaptiveDrivingBeam":                 "adaptive_driving_beam",
	"AdaptiveHeadlights":                  "adaptive_headlights",
	"AdditionalErrorText":                 "additional_error_text",
	"AirBagLocCurtain":                    "air_bag_loc_curtain",
	"AirBagLocFront":                      "air_bag_loc_front",
	"AirBagLocKnee":                       "air_bag_loc_knee",
	"AirBagLocSeatCushion":                "air_bag_loc_seat_cushion",
	"AirBagLocSide":                       "air_bag_loc_side",
	"AutoReverseSystem":                   "auto_reverse_system",
	"AutomaticPedestrianAlertingSound":    "automatic_pedestrian_alerting_sound",
	"AxleConfiguration":                   "axle_configuration",
	"Axles":                               "axles",
	"BasePrice":                           "base_price",
	"BatteryA":                            "battery_a",
	"BatteryA_to":                         "battery_a_to",
	"BatteryCells":                        "battery_cells",
	"BatteryInfo":                         "battery_info",
	"BatteryKWh":                          "battery_kwh",
	"BatteryKWh_to":                       "battery_kwh_to",
	"BatteryModules":                      "battery_modules",
	"BatteryPacks":                        "battery_packs",
	"BatteryType":                         "battery_type",
	"BatteryV":                            "battery_v",
	"BatteryV_to":                         "battery_v_to",
	"BedLengthIN":                         "bed_length_in",
	"BedType":                             "bed_type",
	"BlindSpotIntervention":               "blind_spot_intervention",
	"BlindSpotMon":                        "blind_spot_mon",
	"BodyCabType":                         "body_cab_type",
	"BodyClass":                           "body_class",
	"BrakeSystemDesc":                     "brake_system_desc",
	"BrakeSystemType":                     "brake_system_type",
	"BusFloorConfigType":                  "bus_floor_config_type",
	"BusLength":                           "bus_length",
	"BusType":                             "bus_type",
	"CAN_AACN":                            "can_aacn",
	"CIB":                                 "cib",
	"CashForClunkers":                     "cash_for_clunkers",
	"ChargerLevel":                        "charger_level",
	"ChargerPowerKW":                      "charger_power_kw",
	"CoolingType":                         "cooling_type",
	"CurbWeightLB":                        "curb_weight_lb",
	"CustomMotorcycleType":                "custom_motorcycle_type",
	"DaytimeRunningLight":                 "daytime_running_light",
	"DestinationMarket":                   "destination_market",
	"DisplacementCC":                      "displacement_cc",
	"DisplacementCI":                      "displacement_ci",
	"DisplacementL":                       "displacement_l",
	"Doors":                               "doors",
	"DriveType":                           "drive_type",
	"DriverAssist":                        "driver_assist",
	"DynamicBrakeSupport":                 "dynamic_brake_support",
	"EDR":                                 "edr",
	"ESC":                                 "esc",
	"EVDriveUnit":                         "ev_drive_unit",
	"ElectrificationLevel":                "electrification_level",
	"EngineConfiguration":                 "engine_configuration",
	"EngineCycles":                        "engine_cycles",
	"EngineCylinders":                     "engine_cylinders",
	"EngineHP":                            "engine_hp",
	"EngineHP_to":                         "engine_hp_to",
	"EngineKW":                            "engine_kw",
	"EngineManufacturer":                  "engine_manufacturer",
	"EngineModel":                         "engine_model",
	"EntertainmentSystem":                 "entertainment_system",
	"ErrorCode":                           "error_code",
	"ErrorText":                           "error_text",
	"ForwardCollisionWarning":             "forward_collision_warning",
	"FuelInjectionType":                   "fuel_injection_type",
	"FuelTypePrimary":                     "fuel_type_primary",
	"FuelTypeSecondary":                   "fuel_type_secondary",
	"GCWR":                                "gcwr_from",
	"GCWR_to":                             "gcwr_to",
	"GVWR":                                "gvwr_from",
	"GVWR_to":                             "gvwr_to",
	"KeylessIgnition":                     "keyless_ignition",
	"LaneCenteringAssistance":             "lane_centering_assistance",
	"LaneDepartureWarning":                "lane_departure_warning",
	"LaneKeepSystem":                      "lane_keep_system",
	"LowerBeamHeadlampLightSource":        "lower_beam_headlamp_light_source",
	"ModelYear":                           "model_year",
	"MotorcycleChassisType":               "motorcycle_chassis_type",
	"MotorcycleSuspensionType":            "motorcycle_suspension_type",
	"NCSABodyType":                        "ncsa_body_type",
	"NCSAMake":                            "ncsa_make",
	"NCSAMapExcApprovedBy":                "ncsa_map_exc_approved_by",
	"NCSAMapExcApprovedOn":                "ncsa_map_exc_approved_on",
	"NCSAMappingException":                "ncsa_mapping_exception",
	"NCSAModel":                           "ncsa_model",
	"NCSANote":                            "ncsa_note",
	"Note":                                "note",
	"OtherBusInfo":                        "other_bus_info",
	"OtherEngineInfo":                     "other_engine_info",
	"OtherMotorcycleInfo":                 "other_motorcycle_info",
	"OtherRestraintSystemInfo":            "other_restraint_system_info",
	"OtherTrailerInfo":                    "other_trailer_info",
	"ParkAssist":                          "park_assist",
	"PedestrianAutomaticEmergencyBraking": "pedestrian_automatic_emergency_braking",
	"PlantCity":                           "plant_city",
	"PlantCompanyName":                    "plant_company_name",
	"PlantCountry":                        "plant_country",
	"PlantState":                          "plant_state",
	"PossibleValues":                      "possible_values",
	"Pretensioner":                        "pretensioner",
	"RearAutomaticEmergencyBraking":       "rear_automatic_emergency_braking",
	"RearCrossTrafficAlert":               "rear_cross_traffic_alert",
	"RearVisibilitySystem":                "rear_visibility_system",
	"SAEAutomationLevel":                  "sae_automation_level",
	"SAEAutomationLevel_to":               "sae_automation_level_to",
	"SeatBeltsAll":                        "seat_belts_all",
	"SeatRows":                            "seat_rows",
	"Seats":                               "seats",
	"SemiautomaticHeadlampBeamSwitching":  "semiautomatic_headlamp_beam_switching",
	"Series":                              "series",
	"Series2":                             "series2",
	"SteeringLocation":                    "steering_location",
	"SuggestedVIN":                        "suggested_vin",
	"TPMS":                                "tpms",
	"TopSpeedMPH":                         "top_speed_mph",
	"TrackWidth":                          "track_width",
	"TractionControl":                     "traction_control",
	"TrailerBodyType":                     "trailer_body_type",
	"TrailerLength":                       "trailer_length",
	"TrailerType":                         "trailer_type",
	"TransmissionSpeeds":                  "transmission_speeds",
	"TransmissionStyle":                   "transmission_style",
	"Trim":                                "trim",
	"Trim2":                               "trim2",
	"Turbo":                               "turbo",
	"VIN":                                 "vin",
	"ValveTrainDesign":                    "valve_train_design",
	"WheelBaseLong":                       "wheel_base_long",
	"WheelBaseShort":                      "wheel_base_short",
	"WheelBaseType":                       "wheel_base_type",
	"WheelSizeFront":                      "wheel_size_front",
	"WheelSizeRear":                       "wheel_size_rear",
	"Wheels":                              "wheels",
	"Windows":                             "windows",
})
