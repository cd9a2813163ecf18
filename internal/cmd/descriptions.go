package cmd

// MainDescription is the description text for benchkit cli tool
const MainDescription = `Benchkit provisions a complete bench managed web application stack inside a
fresh container or on a remote host: os packages, mariadb, redis, node, the
bench cli, a default tenant site and dns based multitenancy.

Running benchkit without any subcommands or init command will perform
initialization of ~/.config/benchkit directory, as well as prompt you to
install the bench cli when it is missing.

For stack provisioning see the setup command. Run benchkit setup --help for
more information.
`

const SetupDescription = `Command setup performs the complete stack provisioning sequence.

Setup is safe to rerun: every step records its completion in the benchkit
config and completed steps are skipped on subsequent runs. An aborted setup
resumes at the step which failed.

In essence setup calls the following subcommands in sequence:
	- install-packages
	- bench-user
	- services
	- db-root
	- db-config
	- bench-init
	- new-site (default tenant site)
	- multitenant
	- helper-files
	- autostart

Generated credentials (database root password, site administrator password)
are created once, stored with owner-only permissions in the config directory
and shown a single time. Keep them safe.
`

const NewSiteDescription = `Command new-site creates an additional tenant site on the provisioned bench.

The site name must be a valid dns host name. In dns multitenant mode requests
are routed to the site whose name matches the HTTP Host header, so the name
you choose here is the name you point dns at. A fresh administrator password
is generated for every site and shown exactly once.
`

const MultitenantDescription = `Command multitenant enables dns based multitenancy on the bench.

With dns multitenant mode on, a single webserver port serves all tenant
sites and requests are dispatched by their Host header. The command is a
no-op when the mode is already enabled.
`

const StatusDescription = `Command status reports the state of the stack services and probes every
tenant site over http using its Host header, the same way dns multitenant
routing resolves tenants.
`

const BackupDescription = `Command backup dumps the databases of selected tenant sites with mysqldump
and collects the dumps into a timestamped local directory.
`
