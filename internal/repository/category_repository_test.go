package repository

import (
	"sort"
	"testing"

	"github.com/mxshop-next/internal/models"
)

func TestCategoryDescendantIDs(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCategoryRepository(db)
	root := createTestCategory(t, db, "fresh", models.CategoryTypeLevel1, nil)
	child := createTestCategory(t, db, "fruit", models.CategoryTypeLevel2, &root.ID)
	grandchild := createTestCategory(t, db, "apple", models.CategoryTypeLevel3, &child.ID)
	createTestCategory(t, db, "meat", models.CategoryTypeLevel1, nil)

	ids, err := repo.DescendantIDs(root.ID)
	if err != nil {
		t.Fatalf("descendant ids failed: %v", err)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	want := []uint{root.ID, child.ID, grandchild.ID}
	if len(ids) != len(want) {
		t.Fatalf("want %v got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("want %v got %v", want, ids)
		}
	}
}

func TestCategoryTreeAndParent(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCategoryRepository(db)
	root := createTestCategory(t, db, "fresh", models.CategoryTypeLevel1, nil)
	child := createTestCategory(t, db, "fruit", models.CategoryTypeLevel2, &root.ID)
	createTestCategory(t, db, "apple", models.CategoryTypeLevel3, &child.ID)

	tree, err := repo.ListTree()
	if err != nil {
		t.Fatalf("list tree failed: %v", err)
	}
	if len(tree) != 1 || len(tree[0].SubCategories) != 1 || len(tree[0].SubCategories[0].SubCategories) != 1 {
		t.Fatalf("unexpected tree: %+v", tree)
	}

	parentID, exists, err := repo.GetParentID(child.ID)
	if err != nil || !exists || parentID == nil || *parentID != root.ID {
		t.Fatalf("unexpected parent lookup: parent=%v exists=%v err=%v", parentID, exists, err)
	}
	_, exists, err = repo.GetParentID(9999)
	if err != nil || exists {
		t.Fatalf("expected missing category, exists=%v err=%v", exists, err)
	}
}
