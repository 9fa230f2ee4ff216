package generate

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"stackgen/internal/config"
)

const (
	networkName = "app_network"
	volumeName  = "mysql"
)

type composeFile struct {
	Services services                  `yaml:"services"`
	Networks map[string]composeNetwork `yaml:"networks"`
	Volumes  map[string]struct{}       `yaml:"volumes"`
}

type composeNetwork struct {
	Driver string `yaml:"driver"`
}

type composeService struct {
	Build         string                      `yaml:"build,omitempty"`
	Image         string                      `yaml:"image,omitempty"`
	ContainerName string                      `yaml:"container_name"`
	Restart       string                      `yaml:"restart"`
	Ports         []string                    `yaml:"ports"`
	Volumes       []string                    `yaml:"volumes"`
	Environment   []string                    `yaml:"environment"`
	Networks      []string                    `yaml:"networks"`
	DependsOn     map[string]serviceCondition `yaml:"depends_on,omitempty"`
	Healthcheck   healthcheck                 `yaml:"healthcheck"`
	MemLimit      string                      `yaml:"mem_limit"`
	MemReserve    string                      `yaml:"mem_reservation"`
	CPUs          float64                     `yaml:"cpus"`
}

type serviceCondition struct {
	Condition string `yaml:"condition"`
}

type healthcheck struct {
	Test        []string `yaml:"test,flow"`
	Interval    string   `yaml:"interval"`
	Timeout     string   `yaml:"timeout"`
	Retries     int      `yaml:"retries"`
	StartPeriod string   `yaml:"start_period"`
}

type namedService struct {
	Key     string
	Service composeService
}

// services keeps declaration order; a plain map would be emitted sorted.
type services []namedService

func (s services) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ns := range s {
		var val yaml.Node
		if err := val.Encode(ns.Service); err != nil {
			return nil, fmt.Errorf("encode service %s: %w", ns.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ns.Key},
			&val)
	}
	return node, nil
}

// composeManifest builds the two-service manifest. Service keys come from the
// sanitized container names; the depends_on reference uses the same key.
func composeManifest(c config.Configuration) composeFile {
	web, db := c.WebService(), c.DBService()

	return composeFile{
		Services: services{
			{Key: web, Service: composeService{
				Build:         "apache",
				ContainerName: fmt.Sprintf("${APACHE_CONTAINER:-%s}", web),
				Restart:       "unless-stopped",
				Ports:         []string{"${APACHE_PORT:-80}:80"},
				Volumes: []string{
					"./www:/var/www/html",
					"./apache/custom-php.ini:/usr/local/etc/php/conf.d/custom-php.ini",
				},
				Environment: []string{
					"PHP_ERROR_REPORTING=${PHP_ERROR_REPORTING:-E_ALL}",
					"PHP_DISPLAY_ERRORS=${PHP_DISPLAY_ERRORS:-On}",
				},
				Networks:  []string{networkName},
				DependsOn: map[string]serviceCondition{db: {Condition: "service_healthy"}},
				Healthcheck: healthcheck{
					Test:        []string{"CMD", "wget", "--quiet", "--tries=1", "--spider", "http://localhost/"},
					Interval:    "30s",
					Timeout:     "10s",
					Retries:     3,
					StartPeriod: "40s",
				},
				MemLimit:   "512m",
				MemReserve: "256m",
				CPUs:       2.0,
			}},
			{Key: db, Service: composeService{
				Image:         "mariadb:11.3",
				ContainerName: fmt.Sprintf("${MARIADB_CONTAINER:-%s}", db),
				Restart:       "unless-stopped",
				Ports:         []string{"${MARIADB_PORT:-3306}:3306"},
				Environment: []string{
					"MYSQL_ROOT_PASSWORD=${MYSQL_ROOT_PASSWORD:-root}",
					"MYSQL_DATABASE=${MYSQL_DATABASE:-app_db}",
					"MYSQL_USER=${MYSQL_USER:-app_user}",
					"MYSQL_PASSWORD=${MYSQL_PASSWORD:-app_password}",
					"MYSQL_ROOT_HOST=${MYSQL_ROOT_HOST:-%}",
				},
				Volumes: []string{
					volumeName + ":/var/lib/mysql",
					"./db:/docker-entrypoint-initdb.d",
				},
				Networks: []string{networkName},
				Healthcheck: healthcheck{
					Test:        []string{"CMD", "healthcheck.sh", "--connect", "--innodb_initialized"},
					Interval:    "15s",
					Timeout:     "10s",
					Retries:     10,
					StartPeriod: "60s",
				},
				MemLimit:   "1g",
				MemReserve: "512m",
				CPUs:       2.0,
			}},
		},
		Networks: map[string]composeNetwork{networkName: {Driver: "bridge"}},
		Volumes:  map[string]struct{}{volumeName: {}},
	}
}

func buildCompose(c config.Configuration) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(composeManifest(c)); err != nil {
		return "", fmt.Errorf("encode compose manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode compose manifest: %w", err)
	}
	return buf.String(), nil
}
