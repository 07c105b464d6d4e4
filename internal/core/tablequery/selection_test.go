package tablequery_test

import (
	"testing"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/SscSPs/finsight_dashboard/internal/core/tablequery"
	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	var none domain.IDSet

	one := tablequery.Toggle(none, "t1")
	two := tablequery.Toggle(one, "t2")
	back := tablequery.Toggle(two, "t1")

	assert.Equal(t, []string{"t1"}, one.Sorted())
	assert.Equal(t, []string{"t1", "t2"}, two.Sorted())
	assert.Equal(t, []string{"t2"}, back.Sorted())
}

func TestSelectAll(t *testing.T) {
	visible := []string{"t1", "t2", "t3"}

	tests := []struct {
		name     string
		selected domain.IDSet
		visible  []string
		want     []string
	}{
		{"nothing selected selects visible", domain.IDSet{}, visible, visible},
		{"partial selection selects visible", domain.NewIDSet("t2"), visible, visible},
		{"all selected clears", domain.NewIDSet(visible...), visible, []string{}},
		{"hidden selection replaced by visible", domain.NewIDSet("t9"), visible, visible},
		{"empty visible selects nothing", domain.NewIDSet("t1"), nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tablequery.SelectAll(tt.selected, tt.visible)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestAllSelected(t *testing.T) {
	assert.False(t, tablequery.AllSelected(domain.IDSet{}, nil))
	assert.False(t, tablequery.AllSelected(domain.NewIDSet("a"), []string{"a", "b"}))
	assert.True(t, tablequery.AllSelected(domain.NewIDSet("a", "b"), []string{"a", "b"}))
}

func TestSelectionScoping_FilterChange(t *testing.T) {
	txs := domain.DemoTransactions()

	food := tablequery.WithFilters(domain.DefaultTableQueryState(), domain.TableFilters{
		Categories: []domain.Category{domain.FoodAndDining},
	})
	foodIDs := tablequery.VisibleIDs(tablequery.Query(txs, food))
	selected := tablequery.SelectAll(nil, foodIDs)
	assert.Equal(t, 5, selected.Len())

	cheap := tablequery.WithFilters(food, domain.TableFilters{
		Categories: []domain.Category{domain.FoodAndDining},
		MaxAmount:  "10",
	})
	cheapIDs := tablequery.VisibleIDs(tablequery.Query(txs, cheap))
	selected = tablequery.Retain(selected, cheapIDs)

	assert.Equal(t, []string{"t18", "t7"}, selected.Sorted())
	assert.True(t, tablequery.AllSelected(selected, cheapIDs))

	selected = tablequery.SelectAll(selected, cheapIDs)
	assert.Equal(t, 0, selected.Len())
}
