package generate

import "stackgen/internal/config"

const customPHPIni = `[PHP]
html_errors=1

; Upload limits
upload_max_filesize = 100M
post_max_size = 100M

; Memory and execution
memory_limit = 256M
max_execution_time = 300
max_input_time = 300

; Xdebug
xdebug.mode = develop,debug
xdebug.max_nesting_level = 256
xdebug.show_exception_trace = 0
xdebug.collect_params = 0
xdebug.log = /tmp/xdebug.log

; Xdebug for VSCode / IDE (uncomment when needed)
;xdebug.client_host = host.docker.internal
;xdebug.client_port = 9003
;xdebug.start_with_request = yes
;xdebug.idekey = VSCODE

; Timezone
date.timezone = Europe/Paris
`

// buildPHPIni ignores the configuration: the ini is constant.
func buildPHPIni(config.Configuration) (string, error) {
	return customPHPIni, nil
}
