package models

// Taxonomic domain values
const (
	DomainArchaea  = "Archaea"
	DomainBacteria = "Bacteria"
	DomainEukarya  = "Eukarya"
)

// Ecosystem location types
const (
	LocationNatural    = "Natural"
	LocationArtificial = "Artificial"
)

// Environment climate types
const (
	ClimateTropical  = "Tropical"
	ClimateArid      = "Arid"
	ClimateTemperate = "Temperate"
	ClimateCold      = "Cold"
	ClimatePolar     = "Polar"
)

// Project status values
const (
	StatusOngoing   = "Ongoing"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusOnHold    = "On Hold"
)

// Organism energy sources
const (
	EnergyOrganotroph    = "Organotroph"
	EnergyChemoautotroph = "Chemoautotroph"
	EnergyHeterotroph    = "Heterotroph"
)

// Organism metabolism types
const (
	MetabolismMethanotroph = "Methanotroph"
	MetabolismAutotroph    = "Autotroph"
	MetabolismRespiratory  = "Respiratory"
	MetabolismFermentative = "Fermentative"
)

// Organism oxygen requirements
const (
	OxygenAerobic     = "Aerobic"
	OxygenAnaerobic   = "Anaerobic"
	OxygenFacultative = "Facultative Anaerobic"
)

// AbsoluteZeroC is the lower bound for any temperature field.
const AbsoluteZeroC = -273.15

// ValidDomain reports whether s is one of the three taxonomic domains.
func ValidDomain(s string) bool {
	return s == DomainArchaea || s == DomainBacteria || s == DomainEukarya
}

func ValidLocationType(s string) bool {
	return s == LocationNatural || s == LocationArtificial
}

func ValidClimateType(s string) bool {
	switch s {
	case ClimateTropical, ClimateArid, ClimateTemperate, ClimateCold, ClimatePolar:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusCancelled, StatusOnHold:
		return true
	}
	return false
}

func ValidEnergySource(s string) bool {
	return s == EnergyOrganotroph || s == EnergyChemoautotroph || s == EnergyHeterotroph
}

func ValidMetabolism(s string) bool {
	switch s {
	case MetabolismMethanotroph, MetabolismAutotroph, MetabolismRespiratory, MetabolismFermentative:
		return true
	}
	return false
}

func ValidOxygenRequirement(s string) bool {
	return s == OxygenAerobic || s == OxygenAnaerobic || s == OxygenFacultative
}

// Domain types

type Taxonomy struct {
	TaxonomyID int    `json:"taxonomy_id"`
	Domain     string `json:"domain"`
	Phylum     string `json:"phylum"`
	Class      string `json:"class"`
	OrderName  string `json:"order_name"`
	Family     string `json:"family"`
}

type Ecosystem struct {
	EcosystemID   int    `json:"ecosystem_id"`
	EcosystemName string `json:"ecosystem_name"`
	Description   string `json:"description"`
	LocationType  string `json:"location_type"`
}

type Environment struct {
	EnvironmentID   int    `json:"environment_id"`
	EnvironmentName string `json:"environment_name"`
	ClimateType     string `json:"climate_type"`
	Flora           string `json:"flora"`
	Fauna           string `json:"fauna"`
}

type ProjectInfo struct {
	ProjectID   int    `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type ProjectStatus struct {
	ProjectID int    `json:"project_id"`
	Status    string `json:"status"`
}

type ProjectFunding struct {
	ProjectID     int     `json:"project_id"`
	FundingSource string  `json:"funding_source"`
	Amount        float64 `json:"amount"` // million-dollar units
}

type Organism struct {
	OrganismID        int    `json:"organism_id"`
	Name              string `json:"name"`
	TaxonomyID        int    `json:"taxonomy_id"`
	EcosystemID       int    `json:"ecosystem_id"`
	EnvironmentID     int    `json:"environment_id"`
	EnergySource      string `json:"energy_source"`
	Metabolism        string `json:"metabolism"`
	MetabolismDetail  string `json:"metabolism_detail"`
	OxygenRequirement string `json:"oxygen_requirement"`
	Note              string `json:"note"`
}

type EnvironmentalCondition struct {
	OrganismID     int      `json:"organism_id"`
	MinPH          float64  `json:"min_ph"`
	MaxPH          float64  `json:"max_ph"`
	AvgOptPH       *float64 `json:"avg_opt_ph,omitempty"`
	MinTemp        float64  `json:"min_temp"`
	MaxTemp        float64  `json:"max_temp"`
	AvgOptimumTemp *float64 `json:"avg_optimum_temp,omitempty"`
	MinPressure    float64  `json:"min_pressure"`
	MaxPressure    float64  `json:"max_pressure"`
	AvgOptPressure float64  `json:"avg_opt_pressure"`
	AvgOptSalinity float64  `json:"avg_opt_salinity"`
}

type BioSource struct {
	SourceID   int    `json:"source_id"`
	OrganismID int    `json:"organism_id"`
	SourceURL  string `json:"source_url"`
}

// Request types

// ConditionInput carries tolerance ranges for a new organism. Pressure
// fields default to 1.0 (standard atmosphere) when omitted.
type ConditionInput struct {
	MinPH          float64  `json:"min_ph"`
	MaxPH          float64  `json:"max_ph"`
	AvgOptPH       *float64 `json:"avg_opt_ph,omitempty"`
	MinTemp        float64  `json:"min_temp"`
	MaxTemp        float64  `json:"max_temp"`
	AvgOptimumTemp *float64 `json:"avg_optimum_temp,omitempty"`
	MinPressure    *float64 `json:"min_pressure,omitempty"`
	MaxPressure    *float64 `json:"max_pressure,omitempty"`
	AvgOptPressure *float64 `json:"avg_opt_pressure,omitempty"`
	AvgOptSalinity float64  `json:"avg_opt_salinity"`
}

type CreateOrganismRequest struct {
	Name              string         `json:"name"`
	TaxonomyID        int            `json:"taxonomy_id"`
	EcosystemID       int            `json:"ecosystem_id"`
	EnvironmentID     int            `json:"environment_id"`
	EnergySource      string         `json:"energy_source"`
	Metabolism        string         `json:"metabolism"`
	MetabolismDetail  string         `json:"metabolism_detail"`
	OxygenRequirement string         `json:"oxygen_requirement"`
	Note              string         `json:"note"`
	Conditions        ConditionInput `json:"conditions"`
	SourceURLs        []string       `json:"source_urls,omitempty"`
}

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	Status      string `json:"status,omitempty"`
}

type AddFundingRequest struct {
	FundingSource string  `json:"funding_source"`
	Amount        float64 `json:"amount"`
}

type AddSourceRequest struct {
	SourceURL string `json:"source_url"`
}

type LinkProjectRequest struct {
	ProjectID int `json:"project_id"`
}

// Response types

type CreateOrganismResponse struct {
	OrganismID int `json:"organism_id"`
}

type CreateProjectResponse struct {
	ProjectID int    `json:"project_id"`
	Status    string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// View row types. Field order follows the view column lists, which are a
// stable contract for external reporting tools.

type OrganismTaxonomyEcosystemRow struct {
	OrganismID    int    `json:"organism_id"`
	Name          string `json:"name"`
	Domain        string `json:"domain"`
	Phylum        string `json:"phylum"`
	Class         string `json:"class"`
	OrderName     string `json:"order_name"`
	Family        string `json:"family"`
	EcosystemName string `json:"ecosystem_name"`
	LocationType  string `json:"location_type"`
}

type EcosystemAvgTempRow struct {
	EcosystemName      string  `json:"ecosystem_name"`
	AverageOptimalTemp float64 `json:"average_optimal_temp"`
}

type ExtremeTemperatureRow struct {
	Name             string  `json:"name"`
	MinTemp          float64 `json:"min_temp"`
	MaxTemp          float64 `json:"max_temp"`
	TemperatureRange float64 `json:"temperature_range"`
}

type AquaticFundingRow struct {
	FundingSource string `json:"funding_source"`
	Title         string `json:"title"`
}

type DomainEcosystemCountRow struct {
	Domain        string `json:"domain"`
	EcosystemName string `json:"ecosystem_name"`
	OrganismCount int    `json:"organism_count"`
	ProjectCount  int    `json:"project_count"`
}

type OrganismTempProjectRow struct {
	Name           string  `json:"name"`
	AvgOptimumTemp float64 `json:"avg_optimum_temp"`
	Title          *string `json:"title"`
	Status         *string `json:"status"`
}

type ProjectStatusCountRow struct {
	Title         string `json:"title"`
	Status        string `json:"status"`
	OrganismCount int    `json:"organism_count"`
}

type OrphanOrganismRow struct {
	OrganismID int    `json:"organism_id"`
	Name       string `json:"name"`
	Domain     string `json:"domain"`
	Phylum     string `json:"phylum"`
}

type ProjectDurationRow struct {
	Title        string `json:"title"`
	DurationDays int    `json:"duration_days"`
	OrganismName string `json:"organism_name"`
	Domain       string `json:"domain"`
}

type TemperatureStatsRow struct {
	EcosystemName  string  `json:"ecosystem_name"`
	TotalOrganisms int     `json:"total_organisms"`
	AvgOptimalTemp float64 `json:"avg_optimal_temp"`
	MaxTemp        float64 `json:"max_temp"`
	MinTemp        float64 `json:"min_temp"`
}

type HighFundedProjectRow struct {
	ProjectTitle   string  `json:"project_title"`
	TotalFunding   float64 `json:"total_funding"`
	FundingDisplay string  `json:"funding_display,omitempty"`
	ProjectStatus  string  `json:"project_status"`
	OrganismName   *string `json:"organism_name"`
	Domain         *string `json:"domain"`
	EcosystemName  *string `json:"ecosystem_name"`
}

type OrganismProfileRow struct {
	OrganismID        int    `json:"organism_id"`
	Name              string `json:"name"`
	Domain            string `json:"domain"`
	Phylum            string `json:"phylum"`
	Class             string `json:"class"`
	OrderName         string `json:"order_name"`
	Family            string `json:"family"`
	EcosystemName     string `json:"ecosystem_name"`
	LocationType      string `json:"location_type"`
	EnvironmentName   string `json:"environment_name"`
	ClimateType       string `json:"climate_type"`
	Flora             string `json:"flora"`
	Fauna             string `json:"fauna"`
	EnergySource      string `json:"energy_source"`
	Metabolism        string `json:"metabolism"`
	MetabolismDetail  string `json:"metabolism_detail"`
	OxygenRequirement string `json:"oxygen_requirement"`
	Note              string `json:"note"`
}

type ProjectWithStatus struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

type OrganismProfileResponse struct {
	Profile    OrganismProfileRow      `json:"profile"`
	Conditions *EnvironmentalCondition `json:"conditions,omitempty"`
	Sources    []BioSource             `json:"sources"`
	Projects   []ProjectWithStatus     `json:"projects"`
}

type SearchResult struct {
	Type   string `json:"type"` // "Organism" or "Project"
	Result string `json:"result"`
}
