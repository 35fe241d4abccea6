/*
Package domain contains the core domain models of CANOVA.

It defines the documents the application stores (Users, Projects, Forms and
Responses) and the structure of a form: Pages made of Sections of Questions, with
optional ConditionalLogic deciding where the filler goes next. This package is
kept free of I/O and persistence, following Hexagonal Architecture principles.

# Key Entities

  - Form: A multi-page questionnaire with publication state, access settings and counters.
  - Page: A step of the form. NextPageID/PrevPageID are derived by package flow.
  - ConditionalLogic: AND-ed Conditions routing to a true or false target page.
  - Answers: The fill-time mapping of question IDs to values.
  - Response: A submitted fill.
*/
package domain
