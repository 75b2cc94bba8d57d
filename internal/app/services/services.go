package services

// Services defined in this package:
// - UniversityService: roster, staff and catalog operations over one in-memory University
