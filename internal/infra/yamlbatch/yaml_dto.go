package yamlbatch

type yamlBatch struct {
	Name  string     `yaml:"name"`
	Items []yamlItem `yaml:"items"`
}

type yamlItem struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Value    *float64 `yaml:"value"`
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`

	JSON *yamlJSONSource `yaml:"json"`

	Expect    *float64 `yaml:"expect"`
	Tolerance float64  `yaml:"tolerance"`
}

type yamlJSONSource struct {
	File string `yaml:"file"`
	Path string `yaml:"path"`
}
