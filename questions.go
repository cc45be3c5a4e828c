package main

// Question pairs a prompt with its accepted answers. Several answers may be
// credited during a single round, but each canonical answer only once.
type Question struct {
	Title   string
	Answers []string
}

var questionPool = []Question{
	{
		Title:   "What is the capital of France?",
		Answers: []string{"Paris"},
	},
	{
		Title:   "Name a primary color",
		Answers: []string{"Red", "Blue", "Yellow"},
	},
	{
		Title:   "Name a planet in our solar system",
		Answers: []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"},
	},
	{
		Title:   "What is the largest ocean on Earth?",
		Answers: []string{"Pacific", "Pacific Ocean"},
	},
	{
		Title:   "Name a Beatle",
		Answers: []string{"John Lennon", "Paul McCartney", "George Harrison", "Ringo Starr"},
	},
	{
		Title:   "Name a noble gas",
		Answers: []string{"Helium", "Neon", "Argon", "Krypton", "Xenon", "Radon"},
	},
	{
		Title:   "Which country hosted the 2016 Summer Olympics?",
		Answers: []string{"Brazil"},
	},
	{
		Title:   "Name a continent",
		Answers: []string{"Africa", "Antarctica", "Asia", "Australia", "Europe", "North America", "South America"},
	},
	{
		Title:   "What is the chemical symbol for gold?",
		Answers: []string{"Au"},
	},
	{
		Title:   "Name one of the Great Lakes",
		Answers: []string{"Superior", "Michigan", "Huron", "Erie", "Ontario"},
	},
	{
		Title:   "Who painted the Mona Lisa?",
		Answers: []string{"Leonardo da Vinci", "Da Vinci", "Leonardo"},
	},
	{
		Title:   "Name a string instrument",
		Answers: []string{"Violin", "Viola", "Cello", "Guitar", "Harp", "Double bass", "Banjo", "Mandolin"},
	},
	{
		Title:   "What is the tallest mountain on Earth?",
		Answers: []string{"Everest", "Mount Everest"},
	},
	{
		Title:   "Name a country that borders both France and Germany",
		Answers: []string{"Belgium", "Luxembourg", "Switzerland"},
	},
	{
		Title:   "What is the longest river in the world?",
		Answers: []string{"Nile", "Amazon"},
	},
	{
		Title:   "Name a month with exactly 30 days",
		Answers: []string{"April", "June", "September", "November"},
	},
	{
		Title:   "Who wrote Romeo and Juliet?",
		Answers: []string{"Shakespeare", "William Shakespeare"},
	},
	{
		Title:   "Name a chess piece",
		Answers: []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"},
	},
	{
		Title:   "What is the smallest prime number?",
		Answers: []string{"2", "Two"},
	},
	{
		Title:   "Name one of the three states of matter taught in school",
		Answers: []string{"Solid", "Liquid", "Gas"},
	},
}
