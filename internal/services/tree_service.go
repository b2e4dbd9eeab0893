package services

import (
	"Hoard/internal/config"
	"Hoard/internal/dto"
	"Hoard/internal/mapper"
	"Hoard/internal/models"
	"context"
)

const DefaultMaxTreeDepth = 20

type TreeOptions struct {
	// ExcludeID drops a record together with everything below it.
	ExcludeID string
	// MaxLevels bounds the depth; nodes at this level are returned as leaves.
	MaxLevels       int
	Expanded        map[string]bool
	IncludeArchived bool
}

type TreeService interface {
	Tree(ctx context.Context, opts TreeOptions) ([]*dto.TreeNodeDTO, error)
	Descendants(ctx context.Context, id string) (map[string]bool, error)
}

type treeServiceImpl struct {
	recordService RecordService
	configuration *config.Configuration
}

func NewTreeService(recordService RecordService, configuration *config.Configuration) TreeService {
	return &treeServiceImpl{
		recordService: recordService,
		configuration: configuration,
	}
}

func (s *treeServiceImpl) Tree(ctx context.Context, opts TreeOptions) ([]*dto.TreeNodeDTO, error) {
	records, err := s.recordService.List(ctx)
	if err != nil {
		return nil, err
	}
	if opts.MaxLevels <= 0 {
		opts.MaxLevels = s.configuration.Inventory.MaxTreeDepth
	}
	return BuildTree(records, opts), nil
}

// Descendants returns every record reachable below id through either
// linkage, archived records included.
func (s *treeServiceImpl) Descendants(ctx context.Context, id string) (map[string]bool, error) {
	records, err := s.recordService.List(ctx)
	if err != nil {
		return nil, err
	}
	closure := descendantClosure(newLinkage(records), id)
	delete(closure, id)
	return closure, nil
}

// linkage indexes the two containment edge sets over one node set.
type linkage struct {
	order     []string
	byID      map[string]models.Record
	children  map[string][]string
	contained map[string][]string
}

func newLinkage(records []models.Record) *linkage {
	l := &linkage{
		order:     make([]string, 0, len(records)),
		byID:      make(map[string]models.Record, len(records)),
		children:  map[string][]string{},
		contained: map[string][]string{},
	}
	for _, record := range records {
		if _, duplicate := l.byID[record.ID]; duplicate {
			continue
		}
		l.order = append(l.order, record.ID)
		l.byID[record.ID] = record
	}
	for _, id := range l.order {
		record := l.byID[id]
		if parent := record.Parent(); parent != "" {
			if _, ok := l.byID[parent]; ok {
				l.children[parent] = append(l.children[parent], id)
			}
		}
		for _, containedID := range record.ContainedItemIDs {
			if _, ok := l.byID[containedID]; ok && containedID != id {
				l.contained[id] = append(l.contained[id], containedID)
			}
		}
	}
	return l
}

// childrenOf lists parent-pointer children first, then contained records,
// each in input order and each id once.
func (l *linkage) childrenOf(id string) []string {
	seen := map[string]bool{}
	var out []string
	for _, group := range [][]string{l.children[id], l.contained[id]} {
		for _, child := range group {
			if !seen[child] {
				seen[child] = true
				out = append(out, child)
			}
		}
	}
	return out
}

func (l *linkage) isRoot(id string) bool {
	record := l.byID[id]
	parent := record.Parent()
	if parent == "" {
		return true
	}
	_, ok := l.byID[parent]
	return !ok
}

func descendantClosure(l *linkage, id string) map[string]bool {
	visited := map[string]bool{}
	if _, ok := l.byID[id]; !ok {
		return visited
	}
	stack := []string{id}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[current] {
			continue
		}
		visited[current] = true
		stack = append(stack, l.childrenOf(current)...)
	}
	return visited
}

// BuildTree turns the flat record list into a forest. It never loops on
// cyclic links: a node is not repeated inside its own ancestry and depth is
// capped at MaxLevels. Records reachable only through a cycle become roots
// so every kept record appears at least once.
func BuildTree(records []models.Record, opts TreeOptions) []*dto.TreeNodeDTO {
	maxLevels := opts.MaxLevels
	if maxLevels <= 0 {
		maxLevels = DefaultMaxTreeDepth
	}

	kept := make([]models.Record, 0, len(records))
	for _, record := range records {
		if record.IsArchived && !opts.IncludeArchived {
			continue
		}
		kept = append(kept, record)
	}

	if opts.ExcludeID != "" {
		excluded := descendantClosure(newLinkage(kept), opts.ExcludeID)
		if len(excluded) > 0 {
			remaining := make([]models.Record, 0, len(kept))
			for _, record := range kept {
				if !excluded[record.ID] {
					remaining = append(remaining, record)
				}
			}
			kept = remaining
		}
	}

	l := newLinkage(kept)
	b := &treeBuilder{
		linkage:   l,
		maxLevels: maxLevels,
		expanded:  opts.Expanded,
		ancestors: map[string]bool{},
	}

	forest := []*dto.TreeNodeDTO{}
	for _, id := range l.order {
		if l.isRoot(id) {
			forest = append(forest, b.build(id, 0))
		}
	}
	// The depth cap leaves deep records unplaced even though they hang below
	// a root, so only records outside every root's closure are promoted.
	reachable := map[string]bool{}
	for _, id := range l.order {
		if l.isRoot(id) {
			for reached := range descendantClosure(l, id) {
				reachable[reached] = true
			}
		}
	}
	for _, id := range l.order {
		if reachable[id] {
			continue
		}
		forest = append(forest, b.build(id, 0))
		for reached := range descendantClosure(l, id) {
			reachable[reached] = true
		}
	}
	return forest
}

type treeBuilder struct {
	linkage   *linkage
	maxLevels int
	expanded  map[string]bool
	ancestors map[string]bool
}

func (b *treeBuilder) build(id string, level int) *dto.TreeNodeDTO {
	if level >= b.maxLevels {
		return mapper.ToTreeNodeDTO(b.linkage.byID[id], level, false)
	}
	node := mapper.ToTreeNodeDTO(b.linkage.byID[id], level, b.expanded[id])

	b.ancestors[id] = true
	for _, child := range b.linkage.childrenOf(id) {
		if b.ancestors[child] {
			continue
		}
		node.Children = append(node.Children, b.build(child, level+1))
	}
	delete(b.ancestors, id)
	return node
}
