package encode

type EncodeOption func(*encState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.Color = c.Color }
}
