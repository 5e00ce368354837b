package annotate

import "github.com/aretw0/labelwiz/pkg/domain"

// RecordView is what the host shows for one record.
type RecordView struct {
	Index int // 0-based
	Total int
	// Fields lists every column except the label column, in column order.
	Fields      []domain.Field
	LabelColumn string
	Label       string
	LabelType   domain.LabelType
	Options     []string
	HasPrev     bool
	HasNext     bool
}

// Position returns the 1-based record number.
func (v RecordView) Position() int { return v.Index + 1 }

// Current returns the view of the record at the current index.
func (s *Session) Current() RecordView {
	record, _ := s.ds.Record(s.index)
	fields := make([]domain.Field, 0, len(record))
	for _, f := range record {
		if f.Name == s.cfg.LabelColumn {
			continue
		}
		fields = append(fields, f)
	}
	return RecordView{
		Index:       s.index,
		Total:       s.ds.NumRows(),
		Fields:      fields,
		LabelColumn: s.cfg.LabelColumn,
		Label:       s.control,
		LabelType:   s.cfg.LabelType,
		Options:     append([]string(nil), s.cfg.LabelOptions...),
		HasPrev:     s.index > 0,
		HasNext:     s.index < s.ds.NumRows()-1,
	}
}
