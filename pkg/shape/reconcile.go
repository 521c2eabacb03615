package shape

// Reconcile decodes a server payload and drops input-only fields, including
// those of nested items. Values are taken from the payload only.
func (v *Variant) Reconcile(server Object) (Object, error) {
	return v.decode(server, true)
}

// Reconcile builds the output object for a successful exchange. The variant
// is chosen by the server's discriminator, or by known's when the server
// omitted it. Field values always come from server.
func (r *Registry) Reconcile(known, server Object) (Object, error) {
	discriminator, err := r.discriminator(server)
	if err != nil {
		var fallbackErr error

		discriminator, fallbackErr = r.discriminator(known)
		if fallbackErr != nil {
			return nil, err
		}
	}

	v, ok := r.variants[discriminator]
	if !ok {
		return nil, r.unknown(discriminator)
	}

	return v.Reconcile(server)
}
