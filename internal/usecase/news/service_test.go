package news_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	"newsdesk/internal/usecase/news"
)

/* ───────── スタブ実装 ───────── */

// 挿入順を記録する最小限のインメモリストア
type store struct {
	nextID int64
	log    []string         // 挿入されたテーブル名の順序
	failOn map[string]error // テーブル名 → 強制エラー
	rows   map[string][]any
}

func newStore() *store {
	return &store{nextID: 1, failOn: map[string]error{}, rows: map[string][]any{}}
}

func (s *store) insert(table string, row any) (int64, error) {
	if err := s.failOn[table]; err != nil {
		return 0, err
	}
	id := s.nextID
	s.nextID++
	s.log = append(s.log, table)
	s.rows[table] = append(s.rows[table], row)
	return id, nil
}

type categoryStub struct{ *store }

func (r categoryStub) Create(_ context.Context, c *entity.Category) error {
	id, err := r.insert("categories", *c)
	c.ID = id
	return err
}

type authorStub struct{ *store }

func (r authorStub) Create(_ context.Context, a *entity.Author) error {
	id, err := r.insert("authors", *a)
	a.ID = id
	return err
}

type editorStub struct{ *store }

func (r editorStub) Create(_ context.Context, e *entity.Editor) error {
	id, err := r.insert("editors", *e)
	e.ID = id
	return err
}

type articleStub struct{ *store }

func (r articleStub) Create(_ context.Context, a *entity.Article) error {
	id, err := r.insert("first", *a)
	a.ID = id
	return err
}

type imageStub struct{ *store }

func (r imageStub) Create(_ context.Context, i *entity.Image) error {
	id, err := r.insert("images", *i)
	i.ID = id
	return err
}

type summaryStub struct{ *store }

func (r summaryStub) Create(_ context.Context, s *entity.Summary) error {
	id, err := r.insert("summaries", *s)
	s.ID = id
	return err
}

func newService() (*news.Service, *store) {
	st := newStore()
	return news.NewService(&repository.Set{
		Categories: categoryStub{st},
		Authors:    authorStub{st},
		Editors:    editorStub{st},
		Articles:   articleStub{st},
		Images:     imageStub{st},
		Summaries:  summaryStub{st},
	}), st
}

/* ───────── 1. 単体 Insert ───────── */

func TestService_InsertCategory(t *testing.T) {
	svc, st := newService()

	id, err := svc.InsertCategory(context.Background(), "Politics", "All first related to politics")
	if err != nil {
		t.Fatalf("InsertCategory err=%v", err)
	}
	if id != 1 {
		t.Fatalf("id=%d, want 1", id)
	}
	want := []any{entity.Category{Name: "Politics", Description: "All first related to politics"}}
	if diff := cmp.Diff(want, st.rows["categories"]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestService_InsertCategory_NotIdempotent(t *testing.T) {
	svc, st := newService()
	ctx := context.Background()

	a, _ := svc.InsertCategory(ctx, "Politics", "x")
	b, _ := svc.InsertCategory(ctx, "Politics", "x")
	if a == b || len(st.rows["categories"]) != 2 {
		t.Fatalf("want two distinct rows, got ids %d,%d rows=%d", a, b, len(st.rows["categories"]))
	}
}

func TestService_InsertFirst_TemplateOrder(t *testing.T) {
	svc, st := newService()
	when := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	if _, err := svc.InsertFirst(context.Background(), 1, 2, 3, when, "T", "B", "https://l"); err != nil {
		t.Fatal(err)
	}
	want := []any{entity.Article{
		CategoryID: 1, AuthorID: 2, EditorID: 3,
		Datetime: when, Title: "T", Body: "B", Link: "https://l",
	}}
	if diff := cmp.Diff(want, st.rows["first"]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestService_InsertErrorsAreWrapped(t *testing.T) {
	svc, st := newService()
	boom := errors.New("boom")
	st.failOn["authors"] = boom

	id, err := svc.InsertAuthor(context.Background(), "'jonny", "jon@mail.com")
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom in chain", err)
	}
	if id != 0 {
		t.Fatalf("id=%d, want 0", id)
	}
}

func TestService_MissingRepository(t *testing.T) {
	svc := news.NewService(&repository.Set{})
	ctx := context.Background()

	calls := map[string]func() (int64, error){
		"category": func() (int64, error) { return svc.InsertCategory(ctx, "a", "b") },
		"author":   func() (int64, error) { return svc.InsertAuthor(ctx, "a", "b") },
		"editor":   func() (int64, error) { return svc.InsertEditor(ctx, "a", "b") },
		"first":    func() (int64, error) { return svc.InsertFirst(ctx, 1, 1, 1, time.Now(), "t", "b", "l") },
		"image":    func() (int64, error) { return svc.InsertImage(ctx, 1, "u") },
		"summary":  func() (int64, error) { return svc.InsertSummary(ctx, 1, "s") },
	}
	for name, call := range calls {
		if _, err := call(); !errors.Is(err, news.ErrRepositoryMissing) {
			t.Errorf("%s: err=%v, want ErrRepositoryMissing", name, err)
		}
	}
}

/* ───────── 2. PublishArticle ───────── */

func input() news.ArticleInput {
	return news.ArticleInput{
		CategoryName: "Politics", CategoryDescription: "All first related to politics",
		AuthorName: "'jonny", AuthorEmail: "jon@mail.com",
		EditorName: "Mary", EditorEmail: "mary@mail.com",
		Datetime: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Title:    "Budget", Body: "Parliament approved the budget.", Link: "https://news.example.com/b",
		ImageURLs: []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
		Summary:   "Budget passed.",
	}
}

func TestService_PublishArticle(t *testing.T) {
	svc, st := newService()

	got, err := svc.PublishArticle(context.Background(), input())
	if err != nil {
		t.Fatalf("PublishArticle err=%v", err)
	}

	want := &news.Published{
		CategoryID: 1, AuthorID: 2, EditorID: 3, ArticleID: 4,
		ImageIDs: []int64{5, 6}, SummaryID: 7,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	order := []string{"categories", "authors", "editors", "first", "images", "images", "summaries"}
	if diff := cmp.Diff(order, st.log); diff != "" {
		t.Fatalf("insert order (-want +got):\n%s", diff)
	}

	// 生成IDが依存行に引き継がれる
	art := st.rows["first"][0].(entity.Article)
	if art.CategoryID != 1 || art.AuthorID != 2 || art.EditorID != 3 {
		t.Fatalf("article references not threaded: %+v", art)
	}
	if img := st.rows["images"][1].(entity.Image); img.FirstID != 4 {
		t.Fatalf("image FirstID=%d, want 4", img.FirstID)
	}
}

func TestService_PublishArticle_ReusesExistingRows(t *testing.T) {
	svc, st := newService()
	in := input()
	in.CategoryID, in.AuthorID, in.EditorID = 11, 12, 13
	in.ImageURLs = nil
	in.Summary = ""

	got, err := svc.PublishArticle(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"first"}, st.log); diff != "" {
		t.Fatalf("insert order (-want +got):\n%s", diff)
	}
	if got.CategoryID != 11 || got.AuthorID != 12 || got.EditorID != 13 || got.SummaryID != 0 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestService_PublishArticle_StopsAtFailingStep(t *testing.T) {
	svc, st := newService()
	fk := errors.New("foreign key violation")
	st.failOn["images"] = fk

	got, err := svc.PublishArticle(context.Background(), input())
	if got != nil {
		t.Fatalf("result must be nil on failure, got %+v", got)
	}

	var pe *news.PublishError
	if !errors.As(err, &pe) {
		t.Fatalf("err=%v, want *PublishError", err)
	}
	if pe.Step != news.StepImage {
		t.Fatalf("Step=%s, want %s", pe.Step, news.StepImage)
	}
	if !errors.Is(err, fk) {
		t.Fatal("cause must stay in the chain")
	}
	want := news.Published{CategoryID: 1, AuthorID: 2, EditorID: 3, ArticleID: 4}
	if diff := cmp.Diff(want, pe.Committed); diff != "" {
		t.Fatalf("committed (-want +got):\n%s", diff)
	}
	// 失敗後は後続のステップを実行しない
	if len(st.rows["summaries"]) != 0 {
		t.Fatal("summary must not be inserted after a failed step")
	}
}

func TestService_PublishArticle_FailureWithReusedRows(t *testing.T) {
	svc, st := newService()
	st.failOn["editors"] = errors.New("not null violation")
	in := input()
	in.CategoryID, in.AuthorID = 11, 12

	_, err := svc.PublishArticle(context.Background(), in)

	var pe *news.PublishError
	if !errors.As(err, &pe) {
		t.Fatalf("err=%v, want *PublishError", err)
	}
	if pe.Step != news.StepEditor {
		t.Fatalf("Step=%s, want %s", pe.Step, news.StepEditor)
	}
	// 既存行は Committed に含めない
	if diff := cmp.Diff(news.Published{}, pe.Committed); diff != "" {
		t.Fatalf("committed (-want +got):\n%s", diff)
	}
	if len(st.log) != 0 {
		t.Fatalf("nothing should be inserted, got %v", st.log)
	}
}

func TestService_PublishArticle_CommittedOnlyListsNewRows(t *testing.T) {
	svc, st := newService()
	st.failOn["summaries"] = errors.New("check violation")
	in := input()
	in.AuthorID = 12

	_, err := svc.PublishArticle(context.Background(), in)

	var pe *news.PublishError
	if !errors.As(err, &pe) {
		t.Fatalf("err=%v, want *PublishError", err)
	}
	want := news.Published{CategoryID: 1, EditorID: 2, ArticleID: 3, ImageIDs: []int64{4, 5}}
	if diff := cmp.Diff(want, pe.Committed); diff != "" {
		t.Fatalf("committed (-want +got):\n%s", diff)
	}
}
