package normalize

import (
	"sort"
	"strings"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// Schema maps each logical attribute to the raw column name that carries it
// in a given collection, resolved once per batch (the upstream export has a
// fixed schema within one batch). An empty name means no candidate column
// exists; the corresponding normalized field keeps its default.
type Schema struct {
	Key       string
	Status    string
	Value     string
	Due       string
	Updated   string
	Owner     string
	Market    string
	Margin    string
	Received  string
	Delivered string
	Budget    string
	Consumed  string

	Practice map[domain.Practice]string
}

// UpdateSchema is the resolved column layout of the updates collection.
type UpdateSchema struct {
	Owner  string
	Status string
}

var practiceCandidates = map[domain.Practice][]string{
	domain.PracticeDS:     {"%DS", "PctDS", "PercentDS"},
	domain.PracticeDIC:    {"%DIC", "PctDIC", "PercentDIC"},
	domain.PracticeDataAI: {"%Dados/IA", "PctDados", "PercentDadosIA", "%DadosIA"},
	domain.PracticeCyber:  {"%Cyber", "PctCyber", "PercentCyber"},
	domain.PracticeSGE:    {"%SGE", "PctSGE", "PercentSGE"},
	domain.PracticeOther:  {"%Outros", "PctOutros", "PercentOutros"},
}

// ResolveSchema inspects the union of field names across the collection, in
// first-seen order, and picks the first candidate column for each logical
// attribute.
func ResolveSchema(records []domain.RawRecord) Schema {
	cols := columnsOf(records)

	s := Schema{
		Key:       firstExact(cols, "JiraKey", "Key", "Title"),
		Status:    firstExact(cols, "Status"),
		Due:       firstExact(cols, "PrazoProposta", "Prazo", "DueDate", "DataPrazoEntrega"),
		Updated:   firstExact(cols, "JiraUpdated", "Updated", "ModifiedDate"),
		Owner:     firstExact(cols, "Assignee", "Arquiteto", "Owner", "ArquitetoPresales"),
		Market:    firstExact(cols, "Mercado", "Market", "Sector"),
		Margin:    firstExact(cols, "Margem", "Margin", "GrossMargin", "MargemBrutaPct"),
		Received:  firstExact(cols, "DataRecebimentoRFP", "Created", "CreatedDate"),
		Delivered: firstExact(cols, "DataEntregaKAM", "DeliveredDate"),
		Budget:    firstExact(cols, "Est.BudgetInicio", "BudgetHoras", "HorasAlocadas", "EstBudgetInicio"),
		Consumed:  firstExact(cols, "HorasConsumidas", "HorasUsadas", "HorasTrabalhadas"),
		Practice:  make(map[domain.Practice]string),
	}

	// Monetary value has a contains-fallback: any column mentioning
	// amount/valor qualifies when none of the well-known names is present.
	s.Value = firstExact(cols, "ValorBRL", "ValorEUR", "Amount", "ValorTotal_Potencial")
	if s.Value == "" {
		s.Value = firstContains(cols, "amount", "valor")
	}

	for practice, candidates := range practiceCandidates {
		s.Practice[practice] = firstExact(cols, candidates...)
	}

	return s
}

// ResolveUpdateSchema locates the owner and status columns of the updates
// collection by substring match, as the upstream export names them loosely.
func ResolveUpdateSchema(records []domain.RawRecord) UpdateSchema {
	cols := columnsOf(records)
	return UpdateSchema{
		Owner:  firstContains(cols, "arquiteto", "nome"),
		Status: firstContains(cols, "rag", "status"),
	}
}

// columnsOf returns the union of field names across the collection. Within a
// record, names are taken in lexical order so that contains-matching is
// deterministic regardless of map iteration order.
func columnsOf(records []domain.RawRecord) []string {
	var cols []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		names := make([]string, 0, len(rec))
		for name := range rec {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				cols = append(cols, name)
			}
		}
	}
	return cols
}

func firstExact(cols []string, candidates ...string) string {
	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}
	for _, candidate := range candidates {
		if _, ok := present[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func firstContains(cols []string, substrings ...string) string {
	for _, c := range cols {
		lower := strings.ToLower(c)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return c
			}
		}
	}
	return ""
}
