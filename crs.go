package cogtiff

import "fmt"

// Geo Key model type values.
const (
	modelTypeProjected  = 1
	modelTypeGeographic = 2
)

// CRS is a PROJJSON-shaped description of a coordinate reference system, as
// resolved from a GeoTIFF GeoKeyDirectory. When the directory names a known
// EPSG code, EPSGCode is set and JSON carries only a short EPSG reference;
// otherwise JSON carries a fully self-described PROJJSON object built from
// the individual geo keys, following the GeoTIFF spec's "user-defined"
// escape hatch.
type CRS struct {
	// EPSGCode is the resolved EPSG code, if the geo keys named one
	// directly (not the 32767 "user-defined" sentinel).
	EPSGCode int
	// JSON is the PROJJSON representation: https://proj.org/specifications/projjson.html
	JSON map[string]any
}

func epsgCRS(code int) *CRS {
	return &CRS{
		EPSGCode: code,
		JSON: map[string]any{
			"$schema": "https://proj.org/schemas/v0.7/projjson.schema.json",
			"type":    "EPSGTypeCRS",
			"id":      map[string]any{"authority": "EPSG", "code": code},
		},
	}
}

// ResolveCRS builds a CRS from a parsed GeoKeyDirectory. It supports both
// EPSG-coded and user-defined coordinate reference systems, following the
// GeoTIFF 1.1
// GeoKey tables for ellipsoid, datum, prime meridian and the 18
// coordinate-transformation methods this package understands.
func ResolveCRS(keys *ParsedGeoKeys) (*CRS, error) {
	gkd := newGeoKeyDirectory(keys)
	modelType, ok := gkd.ModelType()
	if !ok {
		return nil, newError(KindUnsupported, "geo keys have no GTModelType", nil)
	}
	switch modelType {
	case modelTypeProjected:
		return resolveProjectedCRS(gkd)
	case modelTypeGeographic:
		return resolveGeographicCRS(gkd)
	default:
		return nil, newError(KindUnsupported, fmt.Sprintf("unsupported GeoTIFF model type: %d", modelType), nil)
	}
}

func resolveProjectedCRS(gkd *GeoKeyDirectory) (*CRS, error) {
	if epsg, ok := gkd.ProjectedType(); ok && epsg != userDefined {
		return epsgCRS(epsg), nil
	}
	return buildUserDefinedProjectedCRS(gkd)
}

func resolveGeographicCRS(gkd *GeoKeyDirectory) (*CRS, error) {
	if epsg, ok := gkd.GeographicType(); ok && epsg != userDefined {
		return epsgCRS(epsg), nil
	}
	return buildUserDefinedGeographicCRS(gkd)
}

func buildUserDefinedGeographicCRS(gkd *GeoKeyDirectory) (*CRS, error) {
	name := "User-defined"
	if citation, ok := gkd.GeogCitation(); ok {
		name = citation
	}

	if datum, ok := gkd.GeogGeodeticDatum(); ok && datum != userDefined {
		return &CRS{JSON: map[string]any{
			"$schema": "https://proj.org/schemas/v0.7/projjson.schema.json",
			"type":    "GeographicCRS",
			"name":    name,
			"datum": map[string]any{
				"type": "GeodeticReferenceFrame",
				"name": fmt.Sprintf("Unknown datum based upon EPSG %d ellipsoid", datum),
			},
			"datum_ensemble":    nil,
			"coordinate_system": geographicCS(gkd),
		}}, nil
	}

	ellipsoid, err := buildEllipsoidParams(gkd)
	if err != nil {
		return nil, err
	}

	pmName := "Greenwich"
	pmLongitude := 0.0
	if pm, ok := gkd.GeogPrimeMeridian(); ok && pm != userDefined {
		pmName = fmt.Sprintf("EPSG:%d", pm)
	} else if long, ok := gkd.GeogPrimeMeridianLong(); ok {
		pmLongitude = long
		pmName = "User-defined"
	}

	return &CRS{JSON: map[string]any{
		"$schema": "https://proj.org/schemas/v0.7/projjson.schema.json",
		"type":    "GeographicCRS",
		"name":    name,
		"datum": map[string]any{
			"type":      "GeodeticReferenceFrame",
			"name":      name,
			"ellipsoid": ellipsoid,
			"prime_meridian": map[string]any{
				"name":      pmName,
				"longitude": pmLongitude,
			},
		},
		"coordinate_system": geographicCS(gkd),
	}}, nil
}

func buildUserDefinedProjectedCRS(gkd *GeoKeyDirectory) (*CRS, error) {
	baseCRS, err := resolveGeographicCRS(gkd)
	if err != nil {
		return nil, err
	}

	conversion, err := buildConversion(gkd)
	if err != nil {
		return nil, err
	}

	name := "User-defined"
	if citation, ok := gkd.ProjCitation(); ok {
		name = citation
	}

	return &CRS{JSON: map[string]any{
		"$schema":           "https://proj.org/schemas/v0.7/projjson.schema.json",
		"type":              "ProjectedCRS",
		"name":              name,
		"base_crs":          baseCRS.JSON,
		"conversion":        conversion,
		"coordinate_system": projectedCS(gkd),
	}}, nil
}

func buildEllipsoidParams(gkd *GeoKeyDirectory) (map[string]any, error) {
	if code, ok := gkd.GeogEllipsoid(); ok && code != userDefined {
		ellipsoid := map[string]any{"name": fmt.Sprintf("EPSG ellipsoid %d", code)}
		if major, ok := gkd.GeogSemiMajorAxis(); ok {
			ellipsoid["semi_major_axis"] = major
		}
		if invF, ok := gkd.GeogInvFlattening(); ok {
			ellipsoid["inverse_flattening"] = invF
		} else if minor, ok := gkd.GeogSemiMinorAxis(); ok {
			ellipsoid["semi_minor_axis"] = minor
		}
		return ellipsoid, nil
	}

	major, ok := gkd.GeogSemiMajorAxis()
	if !ok {
		return nil, newError(KindUnsupported, "user-defined ellipsoid requires GeogSemiMajorAxisGeoKey", nil)
	}
	ellipsoid := map[string]any{
		"name":            "User-defined",
		"semi_major_axis": major,
	}
	if invF, ok := gkd.GeogInvFlattening(); ok {
		ellipsoid["inverse_flattening"] = invF
	} else if minor, ok := gkd.GeogSemiMinorAxis(); ok {
		ellipsoid["semi_minor_axis"] = minor
	} else {
		return nil, newError(KindUnsupported, "user-defined ellipsoid requires GeogInvFlatteningGeoKey or GeogSemiMinorAxisGeoKey", nil)
	}
	return ellipsoid, nil
}

// Coordinate transformation method codes from GeoKey 3075 (ProjCoordTrans),
// per the GeoTIFF 1.1 CT_* enumeration.
const (
	ctTransverseMercator               = 1
	ctTransverseMercatorSouth          = 2
	ctObliqueMercator                  = 3
	ctObliqueMercatorLaborde           = 4
	ctObliqueMercatorRosenmund         = 5
	ctObliqueMercatorSpherical         = 6
	ctMercator                         = 7
	ctLambertConfConic2SP              = 8
	ctLambertConfConic1SP              = 9
	ctLambertAzimEqualArea             = 10
	ctAlbersEqualArea                  = 11
	ctAzimuthalEquidistant             = 12
	ctStereographic                    = 14
	ctPolarStereographic               = 15
	ctObliqueStereographic             = 16
	ctEquirectangular                  = 17
	ctCassiniSoldner                   = 18
	ctOrthographic                     = 21
	ctPolyconic                        = 22
	ctSinusoidal                       = 24
	ctNewZealandMapGrid                = 26
	ctTransverseMercatorSouthOriented  = 27
)

func param(name string, value float64, ok bool, defaultValue float64) map[string]any {
	v := defaultValue
	if ok {
		v = value
	}
	return map[string]any{"name": name, "value": v}
}

func orElse(v float64, ok bool, fallback float64, fallbackOK bool) (float64, bool) {
	if ok {
		return v, true
	}
	return fallback, fallbackOK
}

// buildConversion builds a PROJJSON coordinate operation ("conversion")
// from the geo keys, dispatching on the 18 coordinate-transformation
// methods this package understands.
func buildConversion(gkd *GeoKeyDirectory) (map[string]any, error) {
	ct, ok := gkd.ProjCoordTrans()
	if !ok {
		return nil, newError(KindUnsupported, "user-defined projected CRS requires ProjCoordTransGeoKey", nil)
	}

	natOriginLat, hasNatOriginLat := gkd.ProjNatOriginLat()
	natOriginLong, hasNatOriginLong := gkd.ProjNatOriginLong()
	scaleAtNatOrigin, hasScaleAtNatOrigin := gkd.ProjScaleAtNatOrigin()
	falseEasting, hasFalseEasting := gkd.ProjFalseEasting()
	falseNorthing, hasFalseNorthing := gkd.ProjFalseNorthing()
	falseOriginLat, hasFalseOriginLat := gkd.ProjFalseOriginLat()
	falseOriginLong, hasFalseOriginLong := gkd.ProjFalseOriginLong()
	falseOriginEasting, hasFalseOriginEasting := gkd.ProjFalseOriginEasting()
	falseOriginNorthing, hasFalseOriginNorthing := gkd.ProjFalseOriginNorthing()
	stdParallel1, hasStdParallel1 := gkd.ProjStdParallel1()
	stdParallel2, hasStdParallel2 := gkd.ProjStdParallel2()
	centerLat, hasCenterLat := gkd.ProjCenterLat()
	centerLong, hasCenterLong := gkd.ProjCenterLong()
	centerEasting, hasCenterEasting := gkd.ProjCenterEasting()
	centerNorthing, hasCenterNorthing := gkd.ProjCenterNorthing()
	scaleAtCenter, hasScaleAtCenter := gkd.ProjScaleAtCenter()
	azimuthAngle, hasAzimuthAngle := gkd.ProjAzimuthAngle()
	straightVertPoleLong, hasStraightVertPoleLong := gkd.ProjStraightVertPoleLong()

	var name string
	var parameters []map[string]any

	switch ct {
	case ctTransverseMercator:
		name = "Transverse Mercator"
		parameters = []map[string]any{
			param("Latitude of natural origin", natOriginLat, hasNatOriginLat, 0),
			param("Longitude of natural origin", natOriginLong, hasNatOriginLong, 0),
			param("Scale factor at natural origin", scaleAtNatOrigin, hasScaleAtNatOrigin, 1),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctTransverseMercatorSouth, ctTransverseMercatorSouthOriented:
		name = "Transverse Mercator (South Orientated)"
		parameters = []map[string]any{
			param("Latitude of natural origin", natOriginLat, hasNatOriginLat, 0),
			param("Longitude of natural origin", natOriginLong, hasNatOriginLong, 0),
			param("Scale factor at natural origin", scaleAtNatOrigin, hasScaleAtNatOrigin, 1),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctObliqueMercator, ctObliqueMercatorLaborde, ctObliqueMercatorRosenmund, ctObliqueMercatorSpherical:
		name = "Hotine Oblique Mercator (variant B)"
		parameters = []map[string]any{
			param("Latitude of projection centre", centerLat, hasCenterLat, 0),
			param("Longitude of projection centre", centerLong, hasCenterLong, 0),
			param("Azimuth of initial line", azimuthAngle, hasAzimuthAngle, 0),
			param("Angle from Rectified to Skew Grid", azimuthAngle, hasAzimuthAngle, 0),
			param("Scale factor on initial line", scaleAtCenter, hasScaleAtCenter, 1),
			param("Easting at projection centre", centerEasting, hasCenterEasting, 0),
			param("Northing at projection centre", centerNorthing, hasCenterNorthing, 0),
		}

	case ctMercator:
		name = "Mercator (variant A)"
		parameters = []map[string]any{
			param("Latitude of natural origin", natOriginLat, hasNatOriginLat, 0),
			param("Longitude of natural origin", natOriginLong, hasNatOriginLong, 0),
			param("Scale factor at natural origin", scaleAtNatOrigin, hasScaleAtNatOrigin, 1),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctLambertConfConic2SP:
		name = "Lambert Conic Conformal (2SP)"
		parameters = []map[string]any{
			param("Latitude of false origin", falseOriginLat, hasFalseOriginLat, 0),
			param("Longitude of false origin", falseOriginLong, hasFalseOriginLong, 0),
			param("Latitude of 1st standard parallel", stdParallel1, hasStdParallel1, 0),
			param("Latitude of 2nd standard parallel", stdParallel2, hasStdParallel2, 0),
			param("Easting at false origin", falseOriginEasting, hasFalseOriginEasting, 0),
			param("Northing at false origin", falseOriginNorthing, hasFalseOriginNorthing, 0),
		}

	case ctLambertConfConic1SP:
		name = "Lambert Conic Conformal (1SP)"
		parameters = []map[string]any{
			param("Latitude of natural origin", natOriginLat, hasNatOriginLat, 0),
			param("Longitude of natural origin", natOriginLong, hasNatOriginLong, 0),
			param("Scale factor at natural origin", scaleAtNatOrigin, hasScaleAtNatOrigin, 1),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctLambertAzimEqualArea:
		name = "Lambert Azimuthal Equal Area"
		parameters = []map[string]any{
			param("Latitude of natural origin", centerLat, hasCenterLat, 0),
			param("Longitude of natural origin", centerLong, hasCenterLong, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctAlbersEqualArea:
		name = "Albers Equal Area"
		parameters = []map[string]any{
			param("Latitude of false origin", falseOriginLat, hasFalseOriginLat, 0),
			param("Longitude of false origin", falseOriginLong, hasFalseOriginLong, 0),
			param("Latitude of 1st standard parallel", stdParallel1, hasStdParallel1, 0),
			param("Latitude of 2nd standard parallel", stdParallel2, hasStdParallel2, 0),
			param("Easting at false origin", falseOriginEasting, hasFalseOriginEasting, 0),
			param("Northing at false origin", falseOriginNorthing, hasFalseOriginNorthing, 0),
		}

	case ctAzimuthalEquidistant:
		name = "Modified Azimuthal Equidistant"
		parameters = []map[string]any{
			param("Latitude of natural origin", centerLat, hasCenterLat, 0),
			param("Longitude of natural origin", centerLong, hasCenterLong, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctStereographic:
		name = "Stereographic"
		parameters = []map[string]any{
			param("Latitude of natural origin", centerLat, hasCenterLat, 0),
			param("Longitude of natural origin", centerLong, hasCenterLong, 0),
			param("Scale factor at natural origin", scaleAtCenter, hasScaleAtCenter, 1),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctPolarStereographic:
		name = "Polar Stereographic (variant B)"
		lat, latOK := orElse(natOriginLat, hasNatOriginLat, stdParallel1, hasStdParallel1)
		long, longOK := orElse(straightVertPoleLong, hasStraightVertPoleLong, natOriginLong, hasNatOriginLong)
		parameters = []map[string]any{
			param("Latitude of standard parallel", lat, latOK, 0),
			param("Longitude of origin", long, longOK, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctObliqueStereographic:
		name = "Oblique Stereographic"
		parameters = []map[string]any{
			param("Latitude of natural origin", centerLat, hasCenterLat, 0),
			param("Longitude of natural origin", centerLong, hasCenterLong, 0),
			param("Scale factor at natural origin", scaleAtCenter, hasScaleAtCenter, 1),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctEquirectangular:
		name = "Equidistant Cylindrical"
		lat, latOK := orElse(stdParallel1, hasStdParallel1, centerLat, hasCenterLat)
		parameters = []map[string]any{
			param("Latitude of 1st standard parallel", lat, latOK, 0),
			param("Longitude of natural origin", centerLong, hasCenterLong, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctCassiniSoldner:
		name = "Cassini-Soldner"
		parameters = []map[string]any{
			param("Latitude of natural origin", natOriginLat, hasNatOriginLat, 0),
			param("Longitude of natural origin", natOriginLong, hasNatOriginLong, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctPolyconic:
		name = "American Polyconic"
		parameters = []map[string]any{
			param("Latitude of natural origin", natOriginLat, hasNatOriginLat, 0),
			param("Longitude of natural origin", natOriginLong, hasNatOriginLong, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctSinusoidal:
		name = "Sinusoidal"
		parameters = []map[string]any{
			param("Longitude of natural origin", centerLong, hasCenterLong, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctOrthographic:
		name = "Orthographic"
		parameters = []map[string]any{
			param("Latitude of natural origin", centerLat, hasCenterLat, 0),
			param("Longitude of natural origin", centerLong, hasCenterLong, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	case ctNewZealandMapGrid:
		name = "New Zealand Map Grid"
		parameters = []map[string]any{
			param("Latitude of natural origin", natOriginLat, hasNatOriginLat, 0),
			param("Longitude of natural origin", natOriginLong, hasNatOriginLong, 0),
			param("False easting", falseEasting, hasFalseEasting, 0),
			param("False northing", falseNorthing, hasFalseNorthing, 0),
		}

	default:
		return nil, newError(KindUnsupported, fmt.Sprintf("unsupported coordinate transformation type: %d", ct), nil)
	}

	return map[string]any{
		"name":       name,
		"method":     map[string]any{"name": name},
		"parameters": parameters,
	}, nil
}

func geographicCS(gkd *GeoKeyDirectory) map[string]any {
	angularUnit := "degree"
	if units, ok := gkd.GeogAngularUnits(); ok {
		switch units {
		case 9101:
			angularUnit = "radian"
		case 9105:
			angularUnit = "grad"
		}
	}
	return map[string]any{
		"subtype": "ellipsoidal",
		"axis": []map[string]any{
			{"name": "Latitude", "abbreviation": "lat", "direction": "north", "unit": angularUnit},
			{"name": "Longitude", "abbreviation": "lon", "direction": "east", "unit": angularUnit},
		},
	}
}

func projectedCS(gkd *GeoKeyDirectory) map[string]any {
	var linearUnit any = "metre"
	if units, ok := gkd.ProjLinearUnits(); ok {
		switch units {
		case 9002:
			linearUnit = "foot"
		case 9003:
			linearUnit = map[string]any{
				"type":              "LinearUnit",
				"name":              "US survey foot",
				"conversion_factor": 0.30480060960121924,
			}
		}
	}
	return map[string]any{
		"subtype": "Cartesian",
		"axis": []map[string]any{
			{"name": "Easting", "abbreviation": "E", "direction": "east", "unit": linearUnit},
			{"name": "Northing", "abbreviation": "N", "direction": "north", "unit": linearUnit},
		},
	}
}
