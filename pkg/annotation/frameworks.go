package annotation

const (
	Simple      = "Simple"
	JAXB        = "JAXB"
	XStream     = "XStream"
	EncodingXML = "EncodingXML"
)

func init() {
	Register(Simple, func() Framework {
		const pkg = "org.simpleframework.xml."
		return Framework{
			Name:     Simple,
			Language: "java",
			Annotations: map[Key]Annotation{
				Root:         {Template: "@Root", Import: pkg + "Root"},
				Attribute:    {Template: "@Attribute", Import: pkg + "Attribute"},
				Element:      {Template: "@Element", Import: pkg + "Element"},
				ElementArray: {Template: "@ElementArray", Import: pkg + "ElementArray"},
			},
		}
	})
	Register(JAXB, func() Framework {
		const pkg = "javax.xml.bind.annotation."
		return Framework{
			Name:     JAXB,
			Language: "java",
			Annotations: map[Key]Annotation{
				Root:         {Template: "@XmlRootElement", Import: pkg + "XmlRootElement"},
				Attribute:    {Template: "@XmlAttribute", Import: pkg + "XmlAttribute"},
				Element:      {Template: "@XmlElement", Import: pkg + "XmlElement"},
				ElementArray: {Template: "@XmlElement", Import: pkg + "XmlElement"},
			},
		}
	})
	Register(XStream, func() Framework {
		const pkg = "com.thoughtworks.xstream.annotations."
		return Framework{
			Name:     XStream,
			Language: "java",
			Annotations: map[Key]Annotation{
				Root:         {Template: `@XStreamAlias("%s")`, Import: pkg + "XStreamAlias"},
				Attribute:    {Template: "@XStreamAsAttribute", Import: pkg + "XStreamAsAttribute"},
				Element:      {Template: `@XStreamAlias("%s")`, Import: pkg + "XStreamAlias"},
				ElementArray: {Template: `@XStreamImplicit(itemFieldName = "%s")`, Import: pkg + "XStreamImplicit"},
			},
		}
	})
	Register(EncodingXML, func() Framework {
		return Framework{
			Name:     EncodingXML,
			Language: "go",
			Annotations: map[Key]Annotation{
				Root:         {Template: "%s", Import: "encoding/xml"},
				Attribute:    {Template: "%s,attr"},
				Element:      {Template: "%s"},
				ElementArray: {Template: "%s"},
			},
		}
	})
}
