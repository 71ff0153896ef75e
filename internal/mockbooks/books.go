// Package mockbooks bundles a small hand-authored catalog used whenever the
// Google Books API is unavailable or rate limited.
package mockbooks

import (
	"math/rand"

	"livraria/internal/entities"
)

// CategoryIDs lists the bundled categories in display order.
var CategoryIDs = []string{
	"fantasy",
	"action",
	"romance",
	"adventure",
	"fiction",
	"mystery",
	"horror",
	"biography",
}

// FeaturedCategoryIDs is the pool the featured book is drawn from.
var FeaturedCategoryIDs = []string{"fantasy", "fiction", "adventure", "mystery"}

var booksByCategory = map[string][]entities.Book{
	"fantasy": {
		{
			ID:            "fantasy1",
			Title:         "Harry Potter e a Pedra Filosofal",
			Authors:       []string{"J.K. Rowling"},
			Description:   "Harry Potter nunca tinha ouvido falar em Hogwarts até o momento em que as CARTAS começam a aparecer no capacho do número 4 da rua dos Alfeneiros.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/10110415-L.jpg",
			PublishedDate: "1997",
			Categories:    []string{"Fantasy", "Young Adult"},
		},
		{
			ID:            "fantasy2",
			Title:         "O Senhor dos Anéis: A Sociedade do Anel",
			Authors:       []string{"J.R.R. Tolkien"},
			Description:   "Em uma terra fantástica e única, um hobbit recebe de presente de seu tio um anel mágico e perigoso que precisa ser destruído antes que caia nas mãos do mal.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8743225-L.jpg",
			PublishedDate: "1954",
			Categories:    []string{"Fantasy", "Classic"},
		},
		{
			ID:            "fantasy3",
			Title:         "As Crônicas de Nárnia",
			Authors:       []string{"C.S. Lewis"},
			Description:   "Quatro crianças descobrem um guarda-roupa que serve como porta de entrada para o mundo mágico de Nárnia.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8237627-L.jpg",
			PublishedDate: "1950",
			Categories:    []string{"Fantasy", "Children"},
		},
	},
	"action": {
		{
			ID:            "action1",
			Title:         "Jogos Vorazes",
			Authors:       []string{"Suzanne Collins"},
			Description:   "Em uma versão sombria do futuro próximo, doze garotos e doze garotas são forçados a participar dos Jogos Vorazes. Apenas um sairá vencedor.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/6943361-L.jpg",
			PublishedDate: "2008",
			Categories:    []string{"Action", "Dystopian"},
		},
		{
			ID:            "action2",
			Title:         "Divergente",
			Authors:       []string{"Veronica Roth"},
			Description:   "Em uma Chicago futurista, a sociedade é dividida em cinco facções. Tris Prior faz uma escolha que surpreende a todos, inclusive a ela mesma.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/7095688-L.jpg",
			PublishedDate: "2011",
			Categories:    []string{"Action", "Dystopian"},
		},
		{
			ID:            "action3",
			Title:         "O Código Da Vinci",
			Authors:       []string{"Dan Brown"},
			Description:   "Um assassinato no museu do Louvre e pistas em pinturas famosas levam à descoberta de um mistério religioso.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/7895635-L.jpg",
			PublishedDate: "2003",
			Categories:    []string{"Action", "Thriller"},
		},
	},
	"romance": {
		{
			ID:            "romance1",
			Title:         "Orgulho e Preconceito",
			Authors:       []string{"Jane Austen"},
			Description:   "A história de Elizabeth Bennet e seu complicado relacionamento com o orgulhoso Sr. Darcy.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/6749574-L.jpg",
			PublishedDate: "1813",
			Categories:    []string{"Romance", "Classic"},
		},
		{
			ID:            "romance2",
			Title:         "A Culpa é das Estrelas",
			Authors:       []string{"John Green"},
			Description:   "Hazel Grace Lancaster, uma paciente de câncer de 16 anos, conhece e se apaixona por Augustus Waters, um ex-jogador de basquete amputado.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/7890059-L.jpg",
			PublishedDate: "2012",
			Categories:    []string{"Romance", "Young Adult"},
		},
		{
			ID:            "romance3",
			Title:         "Romeu e Julieta",
			Authors:       []string{"William Shakespeare"},
			Description:   "A história de dois jovens amantes cuja morte trágica reconcilia suas famílias em conflito.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/12645114-L.jpg",
			PublishedDate: "1597",
			Categories:    []string{"Romance", "Classic", "Tragedy"},
		},
	},
	"adventure": {
		{
			ID:            "adventure1",
			Title:         "A Ilha do Tesouro",
			Authors:       []string{"Robert Louis Stevenson"},
			Description:   "A história clássica de piratas, tesouros e aventura no mar, contada através dos olhos do jovem Jim Hawkins.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/12840696-L.jpg",
			PublishedDate: "1883",
			Categories:    []string{"Adventure", "Classic"},
		},
		{
			ID:            "adventure2",
			Title:         "As Aventuras de Tom Sawyer",
			Authors:       []string{"Mark Twain"},
			Description:   "As aventuras de um menino crescendo ao longo do rio Mississippi no século XIX.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/10504977-L.jpg",
			PublishedDate: "1876",
			Categories:    []string{"Adventure", "Classic"},
		},
		{
			ID:            "adventure3",
			Title:         "Jurassic Park",
			Authors:       []string{"Michael Crichton"},
			Description:   "Um parque temático de dinossauros criados geneticamente se torna um pesadelo quando os sistemas de segurança falham.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8091016-L.jpg",
			PublishedDate: "1990",
			Categories:    []string{"Adventure", "Science Fiction"},
		},
	},
	"fiction": {
		{
			ID:            "fiction1",
			Title:         "1984",
			Authors:       []string{"George Orwell"},
			Description:   "Um retrato assustador de uma sociedade totalitária do futuro, onde o governo controla todos os aspectos da vida dos cidadãos.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8575111-L.jpg",
			PublishedDate: "1949",
			Categories:    []string{"Fiction", "Dystopian"},
		},
		{
			ID:            "fiction2",
			Title:         "Cem Anos de Solidão",
			Authors:       []string{"Gabriel García Márquez"},
			Description:   "A história de sete gerações da família Buendía e a fundação da cidade fictícia de Macondo.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8701238-L.jpg",
			PublishedDate: "1967",
			Categories:    []string{"Fiction", "Magical Realism"},
		},
		{
			ID:            "fiction3",
			Title:         "O Grande Gatsby",
			Authors:       []string{"F. Scott Fitzgerald"},
			Description:   "A história de Jay Gatsby, um homem misteriosamente rico, e seu amor por Daisy Buchanan.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/6498481-L.jpg",
			PublishedDate: "1925",
			Categories:    []string{"Fiction", "Classic"},
		},
	},
	"mystery": {
		{
			ID:            "mystery1",
			Title:         "O Assassinato no Expresso do Oriente",
			Authors:       []string{"Agatha Christie"},
			Description:   "O famoso detetive Hercule Poirot investiga o assassinato de um passageiro no luxuoso trem Expresso do Oriente.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8231990-L.jpg",
			PublishedDate: "1934",
			Categories:    []string{"Mystery", "Crime"},
		},
		{
			ID:            "mystery2",
			Title:         "O Cão dos Baskervilles",
			Authors:       []string{"Arthur Conan Doyle"},
			Description:   "Sherlock Holmes e Dr. Watson investigam a morte de Sir Charles Baskerville e a lenda de um cão demoníaco.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8751565-L.jpg",
			PublishedDate: "1902",
			Categories:    []string{"Mystery", "Classic"},
		},
		{
			ID:            "mystery3",
			Title:         "Garota Exemplar",
			Authors:       []string{"Gillian Flynn"},
			Description:   "No dia de seu quinto aniversário de casamento, Amy Dunne desaparece. Seu marido, Nick, se torna o principal suspeito.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/7895635-L.jpg",
			PublishedDate: "2012",
			Categories:    []string{"Mystery", "Thriller"},
		},
	},
	"horror": {
		{
			ID:            "horror1",
			Title:         "O Iluminado",
			Authors:       []string{"Stephen King"},
			Description:   "Jack Torrance se torna o zelador de inverno do isolado Hotel Overlook, onde forças sobrenaturais começam a afetar sua sanidade.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8643691-L.jpg",
			PublishedDate: "1977",
			Categories:    []string{"Horror", "Supernatural"},
		},
		{
			ID:            "horror2",
			Title:         "Drácula",
			Authors:       []string{"Bram Stoker"},
			Description:   "A história do vampiro Conde Drácula tentando mudar-se da Transilvânia para a Inglaterra.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/12880815-L.jpg",
			PublishedDate: "1897",
			Categories:    []string{"Horror", "Gothic"},
		},
		{
			ID:            "horror3",
			Title:         "It: A Coisa",
			Authors:       []string{"Stephen King"},
			Description:   "Um grupo de crianças enfrenta uma entidade maligna que se disfarça como um palhaço e explora os medos de suas vítimas.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8114155-L.jpg",
			PublishedDate: "1986",
			Categories:    []string{"Horror", "Supernatural"},
		},
	},
	"biography": {
		{
			ID:            "biography1",
			Title:         "Steve Jobs",
			Authors:       []string{"Walter Isaacson"},
			Description:   "A biografia do inovador cofundador da Apple, baseada em mais de quarenta entrevistas com Jobs.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/7327476-L.jpg",
			PublishedDate: "2011",
			Categories:    []string{"Biography", "Business"},
		},
		{
			ID:            "biography2",
			Title:         "Eu Sou Malala",
			Authors:       []string{"Malala Yousafzai"},
			Description:   "A história da garota que defendeu o direito à educação e foi baleada pelo Talibã.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/7680175-L.jpg",
			PublishedDate: "2013",
			Categories:    []string{"Biography", "Memoir"},
		},
		{
			ID:            "biography3",
			Title:         "Becoming: Minha História",
			Authors:       []string{"Michelle Obama"},
			Description:   "As memórias da ex-primeira-dama dos Estados Unidos, Michelle Obama.",
			ThumbnailURL:  "https://covers.openlibrary.org/b/id/8578022-L.jpg",
			PublishedDate: "2018",
			Categories:    []string{"Biography", "Memoir"},
		},
	},
}

// ByCategory returns the bundled books for a category. Unknown categories
// yield an empty slice, never an error.
func ByCategory(id string) []entities.Book {
	books := booksByCategory[id]
	out := make([]entities.Book, len(books))
	copy(out, books)
	return out
}

// All returns every bundled book in category display order.
func All() []entities.Book {
	var out []entities.Book
	for _, id := range CategoryIDs {
		out = append(out, booksByCategory[id]...)
	}
	return out
}

// Search filters the bundled catalog by a case-insensitive substring match
// on title or author.
func Search(query string) []entities.Book {
	out := []entities.Book{}
	for _, b := range All() {
		if b.MatchesQuery(query) {
			out = append(out, b)
		}
	}
	return out
}

// Featured picks a random book from the featured category pool.
func Featured() entities.Book {
	category := FeaturedCategoryIDs[rand.Intn(len(FeaturedCategoryIDs))]
	books := booksByCategory[category]
	return books[rand.Intn(len(books))]
}
