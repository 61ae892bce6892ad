package cogtiff

// userDefined is the GeoTIFF sentinel meaning "this code is user-defined,
// look at the accompanying parameters instead of resolving by EPSG code".
const userDefined = 32767

// GeoKeyDirectory is a typed view over a parsed GeoKeyDirectory, giving
// named accessors for the keys CRS resolution needs. Each accessor returns
// (value, ok) rather than panicking on a missing key.
type GeoKeyDirectory struct {
	keys *ParsedGeoKeys
}

func newGeoKeyDirectory(keys *ParsedGeoKeys) *GeoKeyDirectory {
	return &GeoKeyDirectory{keys: keys}
}

func (g *GeoKeyDirectory) intKey(k GeoKey) (int, bool) {
	v, ok := g.keys.Params[k]
	return v, ok
}

func (g *GeoKeyDirectory) doubleKey(k GeoKey) (float64, bool) {
	v, ok := g.keys.DoubleParams[k]
	return v, ok
}

func (g *GeoKeyDirectory) asciiKey(k GeoKey) (string, bool) {
	v, ok := g.keys.ASCIIParams[k]
	return v, ok
}

func (g *GeoKeyDirectory) ModelType() (int, bool) { return g.intKey(GeoKeyGTModelType) }

func (g *GeoKeyDirectory) GeographicType() (int, bool) { return g.intKey(GeoKeyGeodeticCRS) }
func (g *GeoKeyDirectory) GeogCitation() (string, bool) { return g.asciiKey(GeoKeyGeogCitation) }
func (g *GeoKeyDirectory) GeogGeodeticDatum() (int, bool) { return g.intKey(GeoKeyGeodeticDatum) }
func (g *GeoKeyDirectory) GeogPrimeMeridian() (int, bool) { return g.intKey(GeoKeyPrimeMeridian) }
func (g *GeoKeyDirectory) GeogPrimeMeridianLong() (float64, bool) {
	return g.doubleKey(GeoKeyPrimeMeridianLongitude)
}
func (g *GeoKeyDirectory) GeogAngularUnits() (int, bool) { return g.intKey(GeoKeyAngularUnits) }
func (g *GeoKeyDirectory) GeogEllipsoid() (int, bool)    { return g.intKey(GeoKeyEllipsoid) }
func (g *GeoKeyDirectory) GeogSemiMajorAxis() (float64, bool) {
	return g.doubleKey(GeoKeyEllipsoidSemiMajorAxis)
}
func (g *GeoKeyDirectory) GeogSemiMinorAxis() (float64, bool) {
	return g.doubleKey(GeoKeyEllipsoidSemiMinorAxis)
}
func (g *GeoKeyDirectory) GeogInvFlattening() (float64, bool) {
	return g.doubleKey(GeoKeyEllipsoidInvFlattening)
}

func (g *GeoKeyDirectory) ProjectedType() (int, bool) { return g.intKey(GeoKeyProjectedCRS) }
func (g *GeoKeyDirectory) ProjCitation() (string, bool) { return g.asciiKey(GeoKeyPCSCitation) }
func (g *GeoKeyDirectory) ProjCoordTrans() (int, bool)  { return g.intKey(GeoKeyProjMethod) }
func (g *GeoKeyDirectory) ProjLinearUnits() (int, bool) { return g.intKey(GeoKeyLinearUnits2) }

func (g *GeoKeyDirectory) ProjStdParallel1() (float64, bool) {
	return g.doubleKey(GeoKeyStandardParallel1GeoKeyProjAngularParameters)
}
func (g *GeoKeyDirectory) ProjStdParallel2() (float64, bool) {
	return g.doubleKey(GeoKeyStandardParallel2GeoKeyProjAngularParameters)
}
func (g *GeoKeyDirectory) ProjNatOriginLong() (float64, bool) {
	return g.doubleKey(GeoKeyNaturalOriginLongitudeProjAngularParameters)
}
func (g *GeoKeyDirectory) ProjNatOriginLat() (float64, bool) {
	return g.doubleKey(GeoKeyNaturalOriginLatitudeProjAngularParameters)
}
func (g *GeoKeyDirectory) ProjFalseEasting() (float64, bool) {
	return g.doubleKey(GeoKeyFalseEastingProjLinearParameters)
}
func (g *GeoKeyDirectory) ProjFalseNorthing() (float64, bool) {
	return g.doubleKey(GeoKeyFalseNorthingProjLinearParameters)
}
func (g *GeoKeyDirectory) ProjFalseOriginLong() (float64, bool) {
	return g.doubleKey(GeoKeyFalseOriginLongitudeProjAngularParameters)
}
func (g *GeoKeyDirectory) ProjFalseOriginLat() (float64, bool) {
	return g.doubleKey(GeoKeyFalseOriginLatitudeProjAngularParameters)
}
func (g *GeoKeyDirectory) ProjFalseOriginEasting() (float64, bool) {
	return g.doubleKey(GeoKeyFalseOriginEastingProjLinearParameters)
}
func (g *GeoKeyDirectory) ProjFalseOriginNorthing() (float64, bool) {
	return g.doubleKey(GeoKeyFalseOriginNorthingProjLinearParameters)
}
func (g *GeoKeyDirectory) ProjCenterLong() (float64, bool) {
	return g.doubleKey(GeoKeyCenterLongitudeProjAngularParameters)
}
func (g *GeoKeyDirectory) ProjCenterLat() (float64, bool) {
	return g.doubleKey(GeoKeyCenterLatitudeProjAngularParameters)
}
func (g *GeoKeyDirectory) ProjCenterEasting() (float64, bool) {
	return g.doubleKey(GeoKeyProjectionCenterEastingProjLinearParameters)
}
func (g *GeoKeyDirectory) ProjCenterNorthing() (float64, bool) {
	return g.doubleKey(GeoKeyProjectionCenterNorthingProjLinearParameters)
}
func (g *GeoKeyDirectory) ProjScaleAtNatOrigin() (float64, bool) {
	return g.doubleKey(GeoKeyScaleAtNaturalOriginProjScalarParameters)
}
func (g *GeoKeyDirectory) ProjScaleAtCenter() (float64, bool) {
	return g.doubleKey(GeoKeyScaleAtCenterProjScalarParameters)
}
func (g *GeoKeyDirectory) ProjAzimuthAngle() (float64, bool) {
	return g.doubleKey(GeoKeyProjAzimuthAngle)
}
func (g *GeoKeyDirectory) ProjStraightVertPoleLong() (float64, bool) {
	return g.doubleKey(GeoKeyStraightVerticalPoleProjAngularParameters)
}
