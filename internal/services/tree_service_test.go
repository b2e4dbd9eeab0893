package services

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, parent string, contained ...string) models.Record {
	record := models.Record{BaseModel: models.BaseModel{ID: id}, Name: id, Kind: models.KindItem}
	if parent != "" {
		record.ParentID = ptr(parent)
	}
	record.ContainedItemIDs = contained
	return record
}

func ids(nodes []*dto.TreeNodeDTO) []string {
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.ID)
	}
	return out
}

func collect(nodes []*dto.TreeNodeDTO, into map[string]int) {
	for _, node := range nodes {
		into[node.ID]++
		collect(node.Children, into)
	}
}

func maxLevel(nodes []*dto.TreeNodeDTO) int {
	deepest := -1
	for _, node := range nodes {
		if node.Level > deepest {
			deepest = node.Level
		}
		if child := maxLevel(node.Children); child > deepest {
			deepest = child
		}
	}
	return deepest
}

func TestBuildTree_ParentChain(t *testing.T) {
	forest := BuildTree([]models.Record{rec("A", ""), rec("B", "A"), rec("C", "B")}, TreeOptions{})

	require.Len(t, forest, 1)
	assert.Equal(t, "A", forest[0].ID)
	assert.Equal(t, 0, forest[0].Level)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, 1, forest[0].Children[0].Level)
	require.Len(t, forest[0].Children[0].Children, 1)
	assert.Equal(t, "C", forest[0].Children[0].Children[0].ID)
}

func TestBuildTree_MaxLevelsStopsAtLeaf(t *testing.T) {
	records := []models.Record{rec("A", ""), rec("B", "A"), rec("C", "B"), rec("D", "C")}
	forest := BuildTree(records, TreeOptions{MaxLevels: 2, Expanded: map[string]bool{"C": true}})

	require.Len(t, forest, 1)
	c := forest[0].Children[0].Children[0]
	assert.Equal(t, "C", c.ID)
	assert.Equal(t, 2, c.Level)
	assert.Empty(t, c.Children)
	assert.False(t, c.IsExpanded)
}

func TestBuildTree_DeepChainStaysUnderItsRoot(t *testing.T) {
	records := []models.Record{rec("A", ""), rec("B", "A"), rec("C", "B"), rec("D", "C"), rec("E", "D")}
	forest := BuildTree(records, TreeOptions{MaxLevels: 2})

	assert.Equal(t, []string{"A"}, ids(forest))
	counts := map[string]int{}
	collect(forest, counts)
	assert.Zero(t, counts["D"])
	assert.Zero(t, counts["E"])
}

func TestBuildTree_CycleBelowDeepChainIsPromotedOnce(t *testing.T) {
	records := []models.Record{rec("A", ""), rec("B", "A"), rec("C", "B"), rec("X", "Y"), rec("Y", "X")}
	forest := BuildTree(records, TreeOptions{MaxLevels: 1})

	assert.Equal(t, []string{"A", "X"}, ids(forest))
}

func TestBuildTree_ParentCycleTerminates(t *testing.T) {
	records := []models.Record{rec("A", "B"), rec("B", "A")}
	forest := BuildTree(records, TreeOptions{MaxLevels: 5})

	counts := map[string]int{}
	collect(forest, counts)
	assert.Equal(t, 1, counts["A"])
	assert.Equal(t, 1, counts["B"])
	assert.LessOrEqual(t, maxLevel(forest), 5)
	assert.Equal(t, []string{"A"}, ids(forest))
}

func TestBuildTree_ContainedCycleIsBounded(t *testing.T) {
	records := []models.Record{rec("A", "", "B"), rec("B", "", "C"), rec("C", "", "A")}
	forest := BuildTree(records, TreeOptions{MaxLevels: 3})

	assert.LessOrEqual(t, maxLevel(forest), 3)
	counts := map[string]int{}
	collect(forest, counts)
	assert.Contains(t, counts, "A")
	assert.Contains(t, counts, "B")
	assert.Contains(t, counts, "C")
}

func TestBuildTree_ChildrenMergeBothLinkagesOnce(t *testing.T) {
	records := []models.Record{
		rec("box", "", "x", "b"),
		rec("a", "box"),
		rec("b", "box"),
		rec("x", ""),
	}
	forest := BuildTree(records, TreeOptions{})

	var box *dto.TreeNodeDTO
	for _, node := range forest {
		if node.ID == "box" {
			box = node
		}
	}
	require.NotNil(t, box)
	assert.Equal(t, []string{"a", "b", "x"}, ids(box.Children))
}

func TestBuildTree_DanglingAndArchivedParentsBecomeRoots(t *testing.T) {
	archived := rec("P", "")
	archived.IsArchived = true
	records := []models.Record{archived, rec("A", "P"), rec("B", "missing")}

	forest := BuildTree(records, TreeOptions{})
	assert.Equal(t, []string{"A", "B"}, ids(forest))

	withArchived := BuildTree(records, TreeOptions{IncludeArchived: true})
	assert.Equal(t, []string{"P", "B"}, ids(withArchived))
	assert.Equal(t, []string{"A"}, ids(withArchived[0].Children))
}

func TestBuildTree_ExcludeRemovesWholeSubtree(t *testing.T) {
	records := []models.Record{
		rec("root", ""),
		rec("X", "root", "Z"),
		rec("Y", "X"),
		rec("Z", ""),
		rec("W", "Z"),
		rec("other", "root"),
	}
	forest := BuildTree(records, TreeOptions{ExcludeID: "X"})

	counts := map[string]int{}
	collect(forest, counts)
	for _, id := range []string{"X", "Y", "Z", "W"} {
		assert.NotContains(t, counts, id)
	}
	assert.Contains(t, counts, "root")
	assert.Contains(t, counts, "other")
}

func TestBuildTree_ExcludeWithCycle(t *testing.T) {
	records := []models.Record{rec("A", "B"), rec("B", "A"), rec("C", "")}
	forest := BuildTree(records, TreeOptions{ExcludeID: "A"})
	assert.Equal(t, []string{"C"}, ids(forest))
}

func TestBuildTree_ExpandedState(t *testing.T) {
	forest := BuildTree([]models.Record{rec("A", ""), rec("B", "A")}, TreeOptions{Expanded: map[string]bool{"A": true}})
	assert.True(t, forest[0].IsExpanded)
	assert.False(t, forest[0].Children[0].IsExpanded)
}

func TestBuildTree_Empty(t *testing.T) {
	forest := BuildTree(nil, TreeOptions{})
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestTreeService_TreeAndDescendants(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	section := env.section(t, "Garage")
	box := env.item(t, dto.RecordDraftDTO{Name: "Toolbox", SectionID: section.ID})
	drill := env.item(t, dto.RecordDraftDTO{Name: "Drill", SectionID: section.ID, ParentID: &box.ID})
	bit := env.item(t, dto.RecordDraftDTO{Name: "Bit", SectionID: section.ID, ParentID: &drill.ID})

	service := NewTreeService(env.records, env.configuration)
	forest, err := service.Tree(ctx, TreeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{section.ID, box.ID}, ids(forest))

	descendants, err := service.Descendants(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{drill.ID: true, bit.ID: true}, descendants)
}
