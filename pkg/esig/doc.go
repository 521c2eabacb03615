// Package esig holds the types of the e-signature platform API: the create
// inputs of packages, documents, elements, stakeholders and actors, the
// resources the platform returns, and the Client interfaces implemented by
// esigclient.
//
// Element, actor and stakeholder inputs are polymorphic. Each concrete input
// adds its Type discriminator when marshalled; the field combinations it may
// carry are checked when the client encodes the request.
package esig
