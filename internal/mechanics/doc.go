// Package mechanics defines the body abstraction shared by all physical
// entities in a multibody model.
//
// [Body] is the polymorphic surface equation-of-motion code works against:
// identity, mass, center of mass, body-fixed frame, potential energy, and
// the four mechanical queries (kinetic energy, linear momentum, angular
// momentum, parallel-axis inertia). [BodyBase] carries the state and
// validation shared by every variant; [Particle] and [RigidBody] are the
// concrete variants.
//
// Mass and potential energy are always held as symbolic expressions:
// setters coerce through [symbol.Sympify], so callers may assign Go
// numbers, expression strings, or prebuilt expressions interchangeably.
// Frames and points are shared by reference with the rest of the model;
// bodies never copy or lock them.
package mechanics
