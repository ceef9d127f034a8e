// Package core contains the shared data model and contracts of RemedyMesh:
// issue variants, the session context mapping, the ReasoningResult produced
// by every resolve call, root cause tags and the Resolver / Engine
// interfaces. Concrete behavior lives in the engine, resolver and remedy
// packages; core deliberately stays dependency free so every other package
// can import it.
package core
