package cogtiff

import "fmt"

// GeoKey identifies an entry in a GeoTIFF GeoKeyDirectory (tag 34735). Only
// the geographic and projected blocks are defined here: this package
// resolves horizontal CRSs only, so the vertical-CRS block (4096-4099)
// that GeoTIFF reserves for a third, elevation-reference datum has no
// consumer and is left out.
type GeoKey uint16

const (
	GeoKeyGTModelType  GeoKey = 1024
	GeoKeyGTRasterType GeoKey = 1025
	GeoKeyGTCitation   GeoKey = 1026

	GeoKeyGeodeticCRS            GeoKey = 2048
	GeoKeyGeogCitation           GeoKey = 2049
	GeoKeyGeodeticDatum          GeoKey = 2050
	GeoKeyPrimeMeridian          GeoKey = 2051
	GeoKeyLinearUnits            GeoKey = 2052
	GeoKeyGeogLinearUnitSize     GeoKey = 2053
	GeoKeyAngularUnits           GeoKey = 2054
	GeoKeyGeogAngularUnitSize    GeoKey = 2055
	GeoKeyEllipsoid              GeoKey = 2056
	GeoKeyEllipsoidSemiMajorAxis GeoKey = 2057
	GeoKeyEllipsoidSemiMinorAxis GeoKey = 2058
	GeoKeyEllipsoidInvFlattening GeoKey = 2059
	GeoKeyAzimuthUnits           GeoKey = 2060
	GeoKeyPrimeMeridianLongitude GeoKey = 2061

	GeoKeyProjectedCRS                                 GeoKey = 3072
	GeoKeyPCSCitation                                  GeoKey = 3073
	GeoKeyProjection                                   GeoKey = 3074
	GeoKeyProjMethod                                   GeoKey = 3075
	GeoKeyLinearUnits2                                 GeoKey = 3076
	GeoKeyProjectedLinearUnitSize                      GeoKey = 3077
	GeoKeyStandardParallel1GeoKeyProjAngularParameters GeoKey = 3078
	GeoKeyStandardParallel2GeoKeyProjAngularParameters GeoKey = 3079
	GeoKeyNaturalOriginLongitudeProjAngularParameters  GeoKey = 3080
	GeoKeyNaturalOriginLatitudeProjAngularParameters   GeoKey = 3081
	GeoKeyFalseEastingProjLinearParameters             GeoKey = 3082
	GeoKeyFalseNorthingProjLinearParameters            GeoKey = 3083
	GeoKeyFalseOriginLongitudeProjAngularParameters    GeoKey = 3084
	GeoKeyFalseOriginLatitudeProjAngularParameters     GeoKey = 3085
	GeoKeyFalseOriginEastingProjLinearParameters       GeoKey = 3086
	GeoKeyFalseOriginNorthingProjLinearParameters      GeoKey = 3087
	GeoKeyCenterLongitudeProjAngularParameters         GeoKey = 3088
	GeoKeyCenterLatitudeProjAngularParameters          GeoKey = 3089
	GeoKeyProjectionCenterEastingProjLinearParameters  GeoKey = 3090
	GeoKeyProjectionCenterNorthingProjLinearParameters GeoKey = 3091
	GeoKeyScaleAtNaturalOriginProjScalarParameters     GeoKey = 3092
	GeoKeyScaleAtCenterProjScalarParameters            GeoKey = 3093
	GeoKeyProjAzimuthAngle                             GeoKey = 3094
	GeoKeyStraightVerticalPoleProjAngularParameters    GeoKey = 3095
)

// ParsedGeoKeys is the decoded content of a GeoKeyDirectory: each key maps
// into one of three typed value sets depending on where GeoTIFF says its
// value lives (packed into the directory itself, GeoDoubleParamsTag, or
// GeoASCIIParamsTag).
type ParsedGeoKeys struct {
	Params       map[GeoKey]int
	DoubleParams map[GeoKey]float64
	ASCIIParams  map[GeoKey]string
}

// geoKeyDirectoryVersion and geoKeyRevision are the only values the GeoTIFF
// 1.1 spec has ever assigned to a GeoKeyDirectory header; a directory
// claiming anything else is not one this package knows how to read.
const (
	geoKeyDirectoryVersion = 1
	geoKeyRevision         = 1
)

// ParseGeoKeys decodes a GeoKeyDirectory (tag 34735) plus its companion
// GeoDoubleParamsTag (34736) and GeoASCIIParamsTag (34737) arrays into a
// ParsedGeoKeys. directory is a flat uint16 array: a 4-value header
// followed by one 4-value (KeyID, TIFFTagLocation, Count, ValueOrOffset)
// entry per key.
func ParseGeoKeys(directory []uint16, doubleParams []float64, asciiParams []byte) (*ParsedGeoKeys, error) {
	if len(directory) < 4 {
		return nil, newError(KindOpen, "geo key directory: header shorter than 4 values", nil)
	}
	if v := int(directory[0]); v != geoKeyDirectoryVersion {
		return nil, newError(KindOpen, fmt.Sprintf("geo key directory: unsupported version %d", v), nil)
	}
	if v := int(directory[1]); v != geoKeyRevision {
		return nil, newError(KindOpen, fmt.Sprintf("geo key directory: unsupported key revision %d", v), nil)
	}
	if v := int(directory[2]); v != 0 && v != 1 {
		return nil, newError(KindOpen, fmt.Sprintf("geo key directory: unsupported minor revision %d", v), nil)
	}

	numberOfKeys := int(directory[3])
	if len(directory) != 4+4*numberOfKeys {
		return nil, newError(KindOpen, fmt.Sprintf(
			"geo key directory: header declares %d keys but directory has %d entries",
			numberOfKeys, (len(directory)-4)/4), nil)
	}

	keys := &ParsedGeoKeys{
		Params:       make(map[GeoKey]int),
		DoubleParams: make(map[GeoKey]float64),
		ASCIIParams:  make(map[GeoKey]string),
	}
	for i := range numberOfKeys {
		entry := directory[4+4*i : 4+4*(i+1)]
		key := GeoKey(entry[0])
		tiffTagLocation := int(entry[1])
		count := int(entry[2])
		value := int(entry[3])

		switch tiffTagLocation {
		case 0:
			if count != 1 {
				return nil, newError(KindOpen, fmt.Sprintf(
					"geo key directory: key %d packed in-place must have count 1, got %d", key, count), nil)
			}
			keys.Params[key] = value
		case 34736:
			if count != 1 {
				return nil, newError(KindUnsupported, fmt.Sprintf(
					"geo key directory: key %d references %d GeoDoubleParams values, only 1 is supported", key, count), nil)
			}
			if value < 0 || value >= len(doubleParams) {
				return nil, newError(KindOpen, fmt.Sprintf(
					"geo key directory: key %d GeoDoubleParams index %d out of range", key, value), nil)
			}
			keys.DoubleParams[key] = doubleParams[value]
		case 34737:
			if value < 0 || value+count > len(asciiParams) {
				return nil, newError(KindOpen, fmt.Sprintf(
					"geo key directory: key %d GeoASCIIParams range [%d:%d] out of range", key, value, value+count), nil)
			}
			keys.ASCIIParams[key] = string(asciiParams[value : value+count])
		default:
			return nil, newError(KindUnsupported, fmt.Sprintf(
				"geo key directory: key %d has unsupported TIFFTagLocation %d", key, tiffTagLocation), nil)
		}
	}
	return keys, nil
}
