package models

type Category struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	EName        string     `gorm:"unique;not null" json:"ename"`
	ARName       string     `gorm:"unique;not null" json:"arname"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	ParentID     *uint      `gorm:"index" json:"parent_id"`
	Children     []Category `gorm:"-" json:"children,omitempty"`
	ProductCount int64      `gorm:"-" json:"product_count"`
	Products     []Product  `gorm:"many2many:product_categories" json:"-"`
}

// BuildCategoryTree assembles a flat category list into a forest,
// grouping nodes under their parent. Categories whose parent is missing
// from the list are treated as roots. The input slice is not modified.
func BuildCategoryTree(flat []Category) []Category {
	byParent := make(map[uint][]Category)
	exists := make(map[uint]bool, len(flat))
	for _, cat := range flat {
		exists[cat.ID] = true
	}
	var roots []Category
	for _, cat := range flat {
		if cat.ParentID == nil || !exists[*cat.ParentID] {
			roots = append(roots, cat)
			continue
		}
		byParent[*cat.ParentID] = append(byParent[*cat.ParentID], cat)
	}
	for i := range roots {
		attachChildren(&roots[i], byParent)
	}
	return roots
}

func attachChildren(cat *Category, byParent map[uint][]Category) {
	children := byParent[cat.ID]
	cat.Children = children
	for i := range cat.Children {
		attachChildren(&cat.Children[i], byParent)
	}
}

// DescendantIDs collects the given category id plus the ids of all its
// descendants in the flat list. A category can never be assigned one of
// these ids as its parent, so the set always contains the id itself.
func DescendantIDs(id uint, flat []Category) map[uint]bool {
	childrenOf := make(map[uint][]uint)
	for _, cat := range flat {
		if cat.ParentID != nil {
			childrenOf[*cat.ParentID] = append(childrenOf[*cat.ParentID], cat.ID)
		}
	}

	excluded := map[uint]bool{id: true}
	stack := []uint{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range childrenOf[cur] {
			if !excluded[child] {
				excluded[child] = true
				stack = append(stack, child)
			}
		}
	}
	return excluded
}
