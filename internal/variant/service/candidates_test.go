package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-service/internal/variant/model"
)

func f64(v float64) *float64 { return &v }

func TestBuildVariantCandidates_Flags(t *testing.T) {
	headers := model.HeaderIndices{PackIndex: 1, MultipleIndex: 2, ContentIndex: 0}

	tests := []struct {
		name   string
		row    model.RowSnapshot
		target model.VariantDescriptor
		want   model.Candidate
	}{
		{
			name: "full id embedded in a longer label, case and spacing ignored",
			row:  model.RowSnapshot{Index: 0, CellTexts: []string{"Art. 9530.900.260 K1 conf.", "10", "1"}},
			target: model.VariantDescriptor{
				FullID: "9530.900.260K1", Suffix: "K1", ArticleName: "9530",
				PackageContent: "10", MultipleQty: f64(1),
			},
			want: model.Candidate{
				Index: 0, RowText: "Art. 9530.900.260 K1 conf. | 10 | 1",
				FullIDMatch: true, ArticleNameMatch: true, SuffixMatch: true,
				PackageMatch: true, MultipleMatch: true,
			},
		},
		{
			name: "absent descriptor fields never match",
			row:  model.RowSnapshot{Index: 0, CellTexts: []string{"whatever", "5", "1"}},
			target: model.VariantDescriptor{
				FullID: "NOPE", ArticleName: "zzz",
			},
			want: model.Candidate{Index: 0, RowText: "whatever | 5 | 1"},
		},
		{
			name: "locale-formatted cell still matches numerically",
			row:  model.RowSnapshot{Index: 2, CellTexts: []string{"X", "10,0", "1.250"}},
			target: model.VariantDescriptor{
				FullID: "NOPE", PackageContent: "10", MultipleQty: f64(1250),
			},
			want: model.Candidate{
				Index: 2, RowText: "X | 10,0 | 1.250",
				PackageMatch: true, MultipleMatch: true,
			},
		},
		{
			name: "unparsable cells resolve to false, not an error",
			row:  model.RowSnapshot{Index: 1, CellTexts: []string{"X", "n/d", "-"}},
			target: model.VariantDescriptor{
				FullID: "NOPE", PackageContent: "10", MultipleQty: f64(1),
			},
			want: model.Candidate{Index: 1, RowText: "X | n/d | -"},
		},
		{
			name: "row shorter than resolved indices",
			row:  model.RowSnapshot{Index: 0, CellTexts: []string{"X"}},
			target: model.VariantDescriptor{
				FullID: "NOPE", PackageContent: "10", MultipleQty: f64(1),
			},
			want: model.Candidate{Index: 0, RowText: "X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildVariantCandidates([]model.RowSnapshot{tt.row}, headers, tt.target)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestBuildVariantCandidates_UnresolvedColumnsNeverMatch(t *testing.T) {
	// колонки не распознаны — package/multiple обязаны быть false,
	// даже когда текст совпадает один в один
	headers := model.HeaderIndices{PackIndex: -1, MultipleIndex: -1, ContentIndex: -1}
	rows := []model.RowSnapshot{{Index: 0, CellTexts: []string{"X", "10", "1"}}}
	target := model.VariantDescriptor{FullID: "NOPE", PackageContent: "10", MultipleQty: f64(1)}

	got, err := BuildVariantCandidates(rows, headers, target)
	require.NoError(t, err)
	assert.False(t, got[0].PackageMatch)
	assert.False(t, got[0].MultipleMatch)
}

func TestBuildVariantCandidates_MissingCellTextsIsLoud(t *testing.T) {
	rows := []model.RowSnapshot{
		{Index: 0, CellTexts: []string{"ok"}},
		{Index: 1, CellTexts: nil, RowID: "grid-17"},
	}
	_, err := BuildVariantCandidates(rows, model.HeaderIndices{PackIndex: -1, MultipleIndex: -1, ContentIndex: -1}, model.VariantDescriptor{FullID: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid-17")
}

func TestBuildVariantCandidates_OrderAndLengthPreserved(t *testing.T) {
	rows := []model.RowSnapshot{
		{Index: 0, CellTexts: []string{"a"}},
		{Index: 1, CellTexts: []string{"b"}},
		{Index: 2, CellTexts: []string{"c"}},
	}
	got, err := BuildVariantCandidates(rows, model.HeaderIndices{PackIndex: -1, MultipleIndex: -1, ContentIndex: -1}, model.VariantDescriptor{FullID: "X"})
	require.NoError(t, err)
	require.Len(t, got, len(rows))
	for i, c := range got {
		assert.Equal(t, i, c.Index)
	}
}
