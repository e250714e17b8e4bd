// Package artifact defines the canonical artifact types produced by the
// classification pipeline. Each artifact is a fixed projection of an upstream
// assistant response: only declared fields are retained, construction happens
// once, and values are immutable afterwards.
package artifact

// Kind identifies a canonical artifact variant.
type Kind string

const (
	KindWorkOrder     Kind = "work_order"
	KindLotoProcedure Kind = "loto_procedure"
	KindChecklist     Kind = "checklist"
	KindEquipmentCard Kind = "equipment_card"
	KindDynamicForm   Kind = "dynamic_form"
	KindImageCard     Kind = "image_card"
	KindResearch      Kind = "research_result"
	KindDataTable     Kind = "data_table"
	KindRCA           Kind = "rca"
	KindSelection     Kind = "selection"
	KindInfoMessage   Kind = "info_message"
	KindMultiResponse Kind = "multi_response"
)

// recognized is the fixed set of kinds an explicit upstream type tag may name.
var recognized = map[Kind]bool{
	KindWorkOrder:     true,
	KindLotoProcedure: true,
	KindChecklist:     true,
	KindEquipmentCard: true,
	KindDynamicForm:   true,
	KindImageCard:     true,
	KindResearch:      true,
	KindDataTable:     true,
	KindRCA:           true,
	KindSelection:     true,
	KindInfoMessage:   true,
	KindMultiResponse: true,
}

// Recognized reports whether k is one of the fixed canonical kinds.
func Recognized(k Kind) bool { return recognized[k] }

// Artifact is the tagged union over all canonical variants. Implementations
// are value structs; Kind discriminates for exhaustive switches.
type Artifact interface {
	Kind() Kind
}

// Part is a spare part requirement on a work order.
type Part struct {
	Number      string `json:"number,omitempty"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity,omitempty"`
}

// Step is a single procedure step.
type Step struct {
	Number      int    `json:"number,omitempty"`
	Instruction string `json:"instruction"`
	Warning     string `json:"warning,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// Checkpoint is a quality gate on a work order.
type Checkpoint struct {
	Description string `json:"description"`
	Criteria    string `json:"criteria,omitempty"`
}

// Reference points at source material (manual, drawing, standard).
type Reference struct {
	Title string `json:"title"`
	Page  int    `json:"page,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Citation is a source attribution for research or fallback answers.
type Citation struct {
	Title   string `json:"title"`
	Page    int    `json:"page,omitempty"`
	Section string `json:"section,omitempty"`
	URL     string `json:"url,omitempty"`
}

// WorkOrder is a maintenance work order.
type WorkOrder struct {
	Number             string       `json:"number"`
	EquipmentTag       string       `json:"equipment_tag,omitempty"`
	EquipmentName      string       `json:"equipment_name,omitempty"`
	WorkType           string       `json:"work_type,omitempty"`
	Priority           Priority     `json:"priority"`
	Description        string       `json:"description,omitempty"`
	Symptoms           []string     `json:"symptoms,omitempty"`
	RequiredParts      []Part       `json:"required_parts,omitempty"`
	RequiredTools      []string     `json:"required_tools,omitempty"`
	SafetyRequirements []string     `json:"safety_requirements,omitempty"`
	ProcedureSteps     []Step       `json:"procedure_steps,omitempty"`
	QualityCheckpoints []Checkpoint `json:"quality_checkpoints,omitempty"`
	EstimatedDuration  string       `json:"estimated_duration,omitempty"`
	LockoutRequired    bool         `json:"lockout_required"`
	ATEXCompliance     bool         `json:"atex_compliance"`
	References         []Reference  `json:"references,omitempty"`
}

func (WorkOrder) Kind() Kind { return KindWorkOrder }

// IsolationPoint is one energy isolation on a LOTO procedure.
type IsolationPoint struct {
	Number       int    `json:"number,omitempty"`
	Description  string `json:"description"`
	EnergyType   string `json:"energy_type,omitempty"`
	Method       string `json:"method,omitempty"`
	Verification string `json:"verification,omitempty"`
}

// LotoProcedure is a lockout/tagout safety isolation procedure.
type LotoProcedure struct {
	Title             string           `json:"title"`
	EquipmentTag      string           `json:"equipment_tag,omitempty"`
	EquipmentName     string           `json:"equipment_name,omitempty"`
	Hazards           []string         `json:"hazards,omitempty"`
	IsolationPoints   []IsolationPoint `json:"isolation_points,omitempty"`
	RequiredPPE       []string         `json:"required_ppe,omitempty"`
	VerificationSteps []string         `json:"verification_steps,omitempty"`
	EstimatedDuration string           `json:"estimated_duration,omitempty"`
	References        []Reference      `json:"references,omitempty"`
}

func (LotoProcedure) Kind() Kind { return KindLotoProcedure }

// ChecklistItem is one entry on a checklist.
type ChecklistItem struct {
	Text     string `json:"text"`
	Required bool   `json:"required,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Checklist is an ordered inspection or task checklist.
type Checklist struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Items       []ChecklistItem `json:"items"`
	References  []Reference     `json:"references,omitempty"`
}

func (Checklist) Kind() Kind { return KindChecklist }

// EquipmentCard is a summary card for one piece of equipment.
type EquipmentCard struct {
	Tag                string            `json:"tag"`
	Name               string            `json:"name"`
	Type               string            `json:"type"`
	Location           string            `json:"location,omitempty"`
	Status             string            `json:"status,omitempty"`
	Specifications     map[string]string `json:"specifications,omitempty"`
	ConnectedEquipment []string          `json:"connected_equipment,omitempty"`
	Notes              string            `json:"notes,omitempty"`
}

func (EquipmentCard) Kind() Kind { return KindEquipmentCard }

// FormField is one input on a dynamic form.
type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label,omitempty"`
	Type     string   `json:"type,omitempty"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
	Default  string   `json:"default,omitempty"`
}

// DynamicForm is a form the assistant asks the user to fill in.
type DynamicForm struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Fields      []FormField `json:"fields"`
	SubmitLabel string      `json:"submit_label,omitempty"`
}

func (DynamicForm) Kind() Kind { return KindDynamicForm }

// ImageCard carries an image the assistant returned (diagram, photo markup).
type ImageCard struct {
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
}

func (ImageCard) Kind() Kind { return KindImageCard }

// ResearchResult is a knowledge-base research summary with sources.
type ResearchResult struct {
	Title    string     `json:"title"`
	Summary  string     `json:"summary,omitempty"`
	Findings []string   `json:"findings,omitempty"`
	Sources  []Citation `json:"sources,omitempty"`
}

func (ResearchResult) Kind() Kind { return KindResearch }

// DataTable is a tabular answer (readings, comparisons, schedules).
type DataTable struct {
	Title   string     `json:"title,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Caption string     `json:"caption,omitempty"`
}

func (DataTable) Kind() Kind { return KindDataTable }

// RCA is a root-cause analysis result.
type RCA struct {
	Title               string      `json:"title,omitempty"`
	Problem             string      `json:"problem,omitempty"`
	RootCause           string      `json:"root_cause"`
	ContributingFactors []string    `json:"contributing_factors,omitempty"`
	RecommendedActions  []string    `json:"recommended_actions,omitempty"`
	Confidence          float64     `json:"confidence,omitempty"`
	References          []Reference `json:"references,omitempty"`
}

func (RCA) Kind() Kind { return KindRCA }

// Option is one choice in a selection prompt.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Selection asks the user to pick from a fixed set of options.
type Selection struct {
	Prompt  string   `json:"prompt,omitempty"`
	Options []Option `json:"options"`
}

func (Selection) Kind() Kind { return KindSelection }

// InfoMessage is the universal degraded form: any payload that matches no
// richer signature still renders as an informational message.
type InfoMessage struct {
	Title     string     `json:"title,omitempty"`
	Message   string     `json:"message"`
	Citations []Citation `json:"citations,omitempty"`
}

func (InfoMessage) Kind() Kind { return KindInfoMessage }

// MultiResponse owns an ordered list of child artifacts. Insertion order is
// presentation order; children are never shared with another response.
type MultiResponse struct {
	Children []Artifact `json:"children"`
}

func (MultiResponse) Kind() Kind { return KindMultiResponse }
