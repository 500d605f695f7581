package models

// EnumOption is a single enum variant exposed by the lookup endpoints,
// pairing the stored value with its display label.
type EnumOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SoilType classifies a field's dominant soil.
type SoilType string

const (
	SoilBrown       SoilType = "brown"
	SoilChernozem   SoilType = "chernozem"
	SoilPodzol      SoilType = "podzol"
	SoilLuvisol     SoilType = "luvisol"
	SoilPeat        SoilType = "peat"
	SoilHistosol    SoilType = "histosol"
	SoilAlluvial    SoilType = "alluvial"
	SoilRendzina    SoilType = "rendzina"
	SoilLoess       SoilType = "loess"
	SoilClay        SoilType = "clay"
	SoilSandy       SoilType = "sandy"
	SoilOther       SoilType = "other"
	SoilNotSelected SoilType = "not_selected"
)

// Label returns the display name for the soil type.
func (s SoilType) Label() string {
	switch s {
	case SoilBrown:
		return "Brown"
	case SoilChernozem:
		return "Chernozem"
	case SoilPodzol:
		return "Podzol"
	case SoilLuvisol:
		return "Luvisol"
	case SoilPeat:
		return "Peat"
	case SoilHistosol:
		return "Histosol"
	case SoilAlluvial:
		return "Alluvial"
	case SoilRendzina:
		return "Rendzina"
	case SoilLoess:
		return "Loess"
	case SoilClay:
		return "Clay"
	case SoilSandy:
		return "Sandy"
	case SoilOther:
		return "Other"
	case SoilNotSelected:
		return "Not selected"
	default:
		return string(s)
	}
}

// Valid reports whether the value is a known soil type.
func (s SoilType) Valid() bool {
	for _, v := range SoilTypes() {
		if SoilType(v.Value) == s {
			return true
		}
	}
	return false
}

// SoilTypes lists every soil type with its label.
func SoilTypes() []EnumOption {
	types := []SoilType{
		SoilBrown, SoilChernozem, SoilPodzol, SoilLuvisol, SoilPeat,
		SoilHistosol, SoilAlluvial, SoilRendzina, SoilLoess, SoilClay,
		SoilSandy, SoilOther, SoilNotSelected,
	}
	opts := make([]EnumOption, 0, len(types))
	for _, t := range types {
		opts = append(opts, EnumOption{Value: string(t), Label: t.Label()})
	}
	return opts
}

// CropType classifies a crop.
type CropType string

const (
	CropCereal      CropType = "cereal"
	CropVegetable   CropType = "vegetable"
	CropFruit       CropType = "fruit"
	CropLegume      CropType = "legume"
	CropOilseed     CropType = "oilseed"
	CropRoot        CropType = "root"
	CropTuber       CropType = "tuber"
	CropForage      CropType = "forage"
	CropFiber       CropType = "fiber"
	CropSpice       CropType = "spice"
	CropMedicinal   CropType = "medicinal"
	CropOrnamental  CropType = "ornamental"
	CropOther       CropType = "other"
	CropNotSelected CropType = "not_selected"
)

// Label returns the display name for the crop type.
func (c CropType) Label() string {
	switch c {
	case CropCereal:
		return "Cereal"
	case CropVegetable:
		return "Vegetable"
	case CropFruit:
		return "Fruit"
	case CropLegume:
		return "Legume"
	case CropOilseed:
		return "Oilseed"
	case CropRoot:
		return "Root"
	case CropTuber:
		return "Tuber"
	case CropForage:
		return "Forage"
	case CropFiber:
		return "Fiber"
	case CropSpice:
		return "Spice"
	case CropMedicinal:
		return "Medicinal"
	case CropOrnamental:
		return "Ornamental"
	case CropOther:
		return "Other"
	case CropNotSelected:
		return "Not selected"
	default:
		return string(c)
	}
}

// Valid reports whether the value is a known crop type.
func (c CropType) Valid() bool {
	for _, v := range CropTypes() {
		if CropType(v.Value) == c {
			return true
		}
	}
	return false
}

// CropTypes lists every crop type with its label.
func CropTypes() []EnumOption {
	types := []CropType{
		CropCereal, CropVegetable, CropFruit, CropLegume, CropOilseed,
		CropRoot, CropTuber, CropForage, CropFiber, CropSpice,
		CropMedicinal, CropOrnamental, CropOther, CropNotSelected,
	}
	opts := make([]EnumOption, 0, len(types))
	for _, t := range types {
		opts = append(opts, EnumOption{Value: string(t), Label: t.Label()})
	}
	return opts
}

// FertilizationType classifies a fertilization event.
type FertilizationType string

const (
	FertNotSelected       FertilizationType = "not_selected"
	FertOrganic           FertilizationType = "organic"
	FertInorganic         FertilizationType = "inorganic"
	FertSlowRelease       FertilizationType = "slow_release"
	FertLiquid            FertilizationType = "liquid"
	FertGranular          FertilizationType = "granular"
	FertFoliar            FertilizationType = "foliar"
	FertHydroponic        FertilizationType = "hydroponic"
	FertControlledRelease FertilizationType = "controlled_release"
	FertBioFertilizer     FertilizationType = "bio_fertilizer"
	FertManure            FertilizationType = "manure"
	FertCompost           FertilizationType = "compost"
	FertGreenManure       FertilizationType = "green_manure"
	FertOther             FertilizationType = "other"
)

// Label returns the display name for the fertilization type.
func (f FertilizationType) Label() string {
	switch f {
	case FertNotSelected:
		return "Not selected"
	case FertOrganic:
		return "Organic"
	case FertInorganic:
		return "Inorganic"
	case FertSlowRelease:
		return "Slow release"
	case FertLiquid:
		return "Liquid"
	case FertGranular:
		return "Granular"
	case FertFoliar:
		return "Foliar"
	case FertHydroponic:
		return "Hydroponic"
	case FertControlledRelease:
		return "Controlled release"
	case FertBioFertilizer:
		return "Bio-fertilizer"
	case FertManure:
		return "Manure"
	case FertCompost:
		return "Compost"
	case FertGreenManure:
		return "Green manure"
	case FertOther:
		return "Other"
	default:
		return string(f)
	}
}

// Valid reports whether the value is a known fertilization type.
func (f FertilizationType) Valid() bool {
	for _, v := range FertilizationTypes() {
		if FertilizationType(v.Value) == f {
			return true
		}
	}
	return false
}

// FertilizationTypes lists every fertilization type with its label.
func FertilizationTypes() []EnumOption {
	types := []FertilizationType{
		FertNotSelected, FertOrganic, FertInorganic, FertSlowRelease,
		FertLiquid, FertGranular, FertFoliar, FertHydroponic,
		FertControlledRelease, FertBioFertilizer, FertManure, FertCompost,
		FertGreenManure, FertOther,
	}
	opts := make([]EnumOption, 0, len(types))
	for _, t := range types {
		opts = append(opts, EnumOption{Value: string(t), Label: t.Label()})
	}
	return opts
}

// PlantProtectionType classifies a plant protection application.
type PlantProtectionType string

const (
	ProtHerbicide       PlantProtectionType = "herbicide"
	ProtInsecticide     PlantProtectionType = "insecticide"
	ProtFungicide       PlantProtectionType = "fungicide"
	ProtRodenticide     PlantProtectionType = "rodenticide"
	ProtNematicide      PlantProtectionType = "nematicide"
	ProtMolluscicide    PlantProtectionType = "molluscicide"
	ProtBactericide     PlantProtectionType = "bactericide"
	ProtVirucide        PlantProtectionType = "virucide"
	ProtAcaricide       PlantProtectionType = "acaricide"
	ProtGrowthRegulator PlantProtectionType = "growth_regulator"
	ProtRepellent       PlantProtectionType = "repellent"
	ProtDesiccant       PlantProtectionType = "desiccant"
	ProtOther           PlantProtectionType = "other"
)

// Label returns the display name for the plant protection type.
func (p PlantProtectionType) Label() string {
	switch p {
	case ProtHerbicide:
		return "Herbicide"
	case ProtInsecticide:
		return "Insecticide"
	case ProtFungicide:
		return "Fungicide"
	case ProtRodenticide:
		return "Rodenticide"
	case ProtNematicide:
		return "Nematicide"
	case ProtMolluscicide:
		return "Molluscicide"
	case ProtBactericide:
		return "Bactericide"
	case ProtVirucide:
		return "Virucide"
	case ProtAcaricide:
		return "Acaricide"
	case ProtGrowthRegulator:
		return "Growth regulator"
	case ProtRepellent:
		return "Repellent"
	case ProtDesiccant:
		return "Desiccant"
	case ProtOther:
		return "Other"
	default:
		return string(p)
	}
}

// Valid reports whether the value is a known plant protection type.
func (p PlantProtectionType) Valid() bool {
	for _, v := range PlantProtectionTypes() {
		if PlantProtectionType(v.Value) == p {
			return true
		}
	}
	return false
}

// PlantProtectionTypes lists every plant protection type with its label.
func PlantProtectionTypes() []EnumOption {
	types := []PlantProtectionType{
		ProtHerbicide, ProtInsecticide, ProtFungicide, ProtRodenticide,
		ProtNematicide, ProtMolluscicide, ProtBactericide, ProtVirucide,
		ProtAcaricide, ProtGrowthRegulator, ProtRepellent, ProtDesiccant,
		ProtOther,
	}
	opts := make([]EnumOption, 0, len(types))
	for _, t := range types {
		opts = append(opts, EnumOption{Value: string(t), Label: t.Label()})
	}
	return opts
}

// AgrotechnicalIntervention identifies the subsidy scheme or eco-scheme an
// activity is declared under. Codes and descriptions follow the Polish
// agricultural payment programmes, which is why the labels stay in Polish:
// they are copied verbatim onto the regulatory report.
type AgrotechnicalIntervention string

const (
	InterventionNone     AgrotechnicalIntervention = "none"
	InterventionPRSK1420 AgrotechnicalIntervention = "PRSK1420"
	InterventionRE1420   AgrotechnicalIntervention = "RE1420"
	InterventionZRSK2327 AgrotechnicalIntervention = "ZRSK2327"
	InterventionRE2327   AgrotechnicalIntervention = "RE2327"
	InterventionEMPW     AgrotechnicalIntervention = "E_MPW"
	InterventionEOPN     AgrotechnicalIntervention = "E_OPN"
	InterventionEUSU     AgrotechnicalIntervention = "E_USU"
	InterventionEWSG     AgrotechnicalIntervention = "E_WSG"
	InterventionEBOU     AgrotechnicalIntervention = "E_BOU"
)

// Label returns the official description of the intervention.
func (a AgrotechnicalIntervention) Label() string {
	switch a {
	case InterventionNone:
		return "Brak wybranej wartości"
	case InterventionPRSK1420:
		return "Działanie rolno-środowiskowo-klimatyczne PROW 2014-2020"
	case InterventionRE1420:
		return "Rolnictwo ekologiczne PROW 2014-2020"
	case InterventionZRSK2327:
		return "Płatności rolno-środowiskowo-klimatyczne WPR PS"
	case InterventionRE2327:
		return "Rolnictwo ekologiczne WPR PS"
	case InterventionEMPW:
		return "Międzyplony ozime lub wsiewki śródplonowe"
	case InterventionEOPN:
		return "Opracowanie i przestrzeganie planu nawożenia: wariant podstawowy lub wariant z wapnowaniem"
	case InterventionEUSU:
		return "Uproszczone systemy uprawy"
	case InterventionEWSG:
		return "Wymieszanie słomy z glebą"
	case InterventionEBOU:
		return "Biologiczna ochrona upraw"
	default:
		return string(a)
	}
}

// Code returns the value printed in the report's intervention column.
// The "none" variant prints as an empty cell.
func (a AgrotechnicalIntervention) Code() string {
	if a == "" || a == InterventionNone {
		return ""
	}
	return string(a)
}

// Valid reports whether the value is a known intervention.
func (a AgrotechnicalIntervention) Valid() bool {
	for _, v := range AgrotechnicalInterventions() {
		if AgrotechnicalIntervention(v.Value) == a {
			return true
		}
	}
	return false
}

// AgrotechnicalInterventions lists every intervention with its description.
func AgrotechnicalInterventions() []EnumOption {
	types := []AgrotechnicalIntervention{
		InterventionNone, InterventionPRSK1420, InterventionRE1420,
		InterventionZRSK2327, InterventionRE2327, InterventionEMPW,
		InterventionEOPN, InterventionEUSU, InterventionEWSG,
		InterventionEBOU,
	}
	opts := make([]EnumOption, 0, len(types))
	for _, t := range types {
		opts = append(opts, EnumOption{Value: string(t), Label: t.Label()})
	}
	return opts
}
