/*
Package ports defines the driven ports (interfaces) of CANOVA.

These interfaces decouple the services from storage and hosting backends, so the
same form logic runs on memory, Redis or SQLite.

# Key Interfaces

  - Store: users, projects, forms and responses (UserStore, ProjectStore, FormStore, ResponseStore).
  - DistributedLocker: serializes writes to the same form across replicas.
  - MediaHost: stores images and videos displayed by questions.

Adapters verify their behavior with the Run*Contract suites of this package.
*/
package ports
