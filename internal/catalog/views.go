package catalog

// Views decorate entities with their derived labels for JSON responses.

type languageView struct {
	Language
	Label string `json:"label"`
}

type genreView struct {
	Genre
	Label string `json:"label"`
}

type authorView struct {
	Author
	Label string `json:"label"`
	URL   string `json:"url"`
}

type bookView struct {
	Book
	Label        string `json:"label"`
	DisplayGenre string `json:"display_genre"`
	URL          string `json:"url"`
}

type instanceView struct {
	BookInstance
	Label       string `json:"label"`
	StatusLabel string `json:"status_label"`
}

type authorDetailView struct {
	Author authorView `json:"author"`
	Books  []bookView `json:"books"`
}

type bookDetailView struct {
	Book      bookView       `json:"book"`
	Instances []instanceView `json:"instances"`
}

func newLanguageView(l Language) languageView {
	return languageView{Language: l, Label: l.String()}
}

func newGenreView(g Genre) genreView {
	return genreView{Genre: g, Label: g.String()}
}

func newAuthorView(a Author) authorView {
	return authorView{Author: a, Label: a.String(), URL: a.AbsoluteURL()}
}

func newBookView(b Book) bookView {
	return bookView{Book: b, Label: b.String(), DisplayGenre: b.DisplayGenre(), URL: b.AbsoluteURL()}
}

func newInstanceView(bi BookInstance) instanceView {
	return instanceView{BookInstance: bi, Label: bi.String(), StatusLabel: bi.Status.Label()}
}

func languageViews(in []Language) []languageView {
	out := make([]languageView, 0, len(in))
	for _, l := range in {
		out = append(out, newLanguageView(l))
	}
	return out
}

func genreViews(in []Genre) []genreView {
	out := make([]genreView, 0, len(in))
	for _, g := range in {
		out = append(out, newGenreView(g))
	}
	return out
}

func authorViews(in []Author) []authorView {
	out := make([]authorView, 0, len(in))
	for _, a := range in {
		out = append(out, newAuthorView(a))
	}
	return out
}

func bookViews(in []Book) []bookView {
	out := make([]bookView, 0, len(in))
	for _, b := range in {
		out = append(out, newBookView(b))
	}
	return out
}

func instanceViews(in []BookInstance) []instanceView {
	out := make([]instanceView, 0, len(in))
	for _, bi := range in {
		out = append(out, newInstanceView(bi))
	}
	return out
}
