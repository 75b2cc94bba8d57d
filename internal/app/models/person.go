package models

// Person is the shape shared by everyone the university keeps on a roster.
type Person struct {
	Name string `json:"name" yaml:"name" example:"Alice"`
	Age  int    `json:"age" yaml:"age" example:"20"`
}
