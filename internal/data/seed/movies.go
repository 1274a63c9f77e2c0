// Package seed holds the built-in catalog written to storage when none exists.
package seed

import (
	"time"

	"cinema-catalog/internal/data/entity"
)

// Movies returns a fresh copy of the built-in catalog.
func Movies() entity.Catalog {
	return movies.Clone()
}

func money(v float64) *float64 { return &v }

var commentTime = time.Date(2020, time.February, 1, 18, 30, 0, 0, time.UTC)

var movies = entity.Catalog{
	{
		ID:          475557,
		Title:       "Joker",
		Tagline:     "Put on a happy face.",
		Overview:    "During the 1980s, a failed stand-up comedian is driven insane and turns to a life of crime and chaos in Gotham City.",
		Genres:      []string{"crime", "thriller", "drama"},
		VoteAverage: 8.2,
		VoteCount:   11526,
		ReleaseDate: "2019-10-02",
		Runtime:     122,
		Budget:      money(55000000),
		Revenue:     money(1074251311),
		Price:       money(12),
		TrailerURL:  "https://www.youtube.com/watch?v=zAGVQLHvwOY",
		PosterPath:  "https://image.tmdb.org/t/p/w500/udDclJoHjfjb8Ekgsd4FDteOkCU.jpg",
		Cinemas: []entity.CinemaSession{
			{Cinema: "Aurora", Address: "12 Main St", Hall: "1", Times: []string{"10:00", "14:30", "21:15"}},
			{Cinema: "Odeon", Address: "4 River Rd", Hall: "3", Times: []string{"12:00", "19:45"}},
		},
		Comments: []entity.Comment{
			{Author: "alex", Date: commentTime, Message: "Phoenix carries the whole film."},
		},
	},
	{
		ID:          496243,
		Title:       "Parasite",
		Tagline:     "Act like you own the place.",
		Overview:    "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood.",
		Genres:      []string{"comedy", "thriller", "drama"},
		VoteAverage: 8.6,
		VoteCount:   8021,
		ReleaseDate: "2019-05-30",
		Runtime:     132,
		Budget:      money(11363000),
		Revenue:     money(257591776),
		Price:       money(10),
		TrailerURL:  "https://www.youtube.com/watch?v=5xH0HfJHsaY",
		PosterPath:  "https://image.tmdb.org/t/p/w500/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
		Cinemas: []entity.CinemaSession{
			{Cinema: "Aurora", Address: "12 Main St", Hall: "2", Times: []string{"11:00", "17:20"}},
		},
		Comments: []entity.Comment{},
	},
	{
		ID:          530915,
		Title:       "1917",
		Tagline:     "Time is the enemy.",
		Overview:    "Two young British soldiers are given a seemingly impossible mission during the First World War.",
		Genres:      []string{"war", "drama", "history"},
		VoteAverage: 8.0,
		VoteCount:   5330,
		ReleaseDate: "2019-12-25",
		Runtime:     119,
		Budget:      money(95000000),
		Revenue:     money(374733942),
		Price:       money(11),
		TrailerURL:  "https://www.youtube.com/watch?v=YqNYrYUiMfg",
		PosterPath:  "https://image.tmdb.org/t/p/w500/iZf0KyrE25z1sage4SYFLCCrMi9.jpg",
		Cinemas: []entity.CinemaSession{
			{Cinema: "Odeon", Address: "4 River Rd", Hall: "1", Times: []string{"13:10", "20:00"}},
		},
		Comments: []entity.Comment{},
	},
	{
		ID:          419704,
		Title:       "Ad Astra",
		Tagline:     "The answers we seek are just outside our reach.",
		Overview:    "An astronaut travels to the outer edges of the solar system to find his father and unravel a mystery that threatens the survival of Earth.",
		Genres:      []string{"science fiction", "drama"},
		VoteAverage: 6.0,
		VoteCount:   3521,
		ReleaseDate: "2019-09-17",
		Runtime:     123,
		Budget:      money(87500000),
		Revenue:     money(127461872),
		Price:       money(8),
		TrailerURL:  "https://www.youtube.com/watch?v=P6AaSMfXHbA",
		PosterPath:  "https://image.tmdb.org/t/p/w500/xBHvZcjRiWyobQ9kxBhO6B2dtRI.jpg",
		Cinemas:     []entity.CinemaSession{},
		Comments:    []entity.Comment{},
	},
	{
		ID:          546554,
		Title:       "Knives Out",
		Tagline:     "Hell, any of them could have done it.",
		Overview:    "When renowned crime novelist Harlan Thrombey is found dead at his estate, the inquisitive Detective Benoit Blanc is mysteriously enlisted to investigate.",
		Genres:      []string{"comedy", "crime", "mystery"},
		VoteAverage: 7.9,
		VoteCount:   6054,
		ReleaseDate: "2019-11-27",
		Runtime:     131,
		Budget:      money(40000000),
		Revenue:     money(311365448),
		TrailerURL:  "https://www.youtube.com/watch?v=qGqiHJTsRkQ",
		PosterPath:  "https://image.tmdb.org/t/p/w500/pThyQovXQrw2m0s9x82twj48Jq4.jpg",
		Cinemas: []entity.CinemaSession{
			{Cinema: "Aurora", Address: "12 Main St", Hall: "4", Times: []string{"16:00"}},
		},
		Comments: []entity.Comment{},
	},
}
